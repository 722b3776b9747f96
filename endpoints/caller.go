package endpoints

import (
	"context"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

type contextKey string

const callerKey contextKey = "caller"

// Caller is the authenticated user as seen by the endpoints. A zero
// Caller means nobody is logged in.
type Caller struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func FromContext(ctx context.Context) (Caller, error) {
	v := ctx.Value(callerKey)
	if v == nil {
		return Caller{}, errors.New("no user", errors.WithCode(http.StatusUnauthorized))
	}

	caller, ok := v.(Caller)
	if !ok {
		return Caller{}, errors.New("invalid user", errors.WithCode(http.StatusUnauthorized))
	}

	return caller, nil
}

// MaybeFromContext never fails: it returns the zero Caller for anonymous
// requests.
func MaybeFromContext(ctx context.Context) Caller {
	caller, _ := ctx.Value(callerKey).(Caller)
	return caller
}

func extractUserID(ctx context.Context) (string, error) {
	claims := ctx.Value(kitjwt.JWTClaimsContextKey)
	if claims == nil {
		return "", errors.New("no user", errors.WithCode(http.StatusUnauthorized))
	}

	blogifyClaims, ok := claims.(*jwt.Claims)
	if !ok {
		return "", errors.New("invalid claims", errors.WithCode(http.StatusUnauthorized))
	}

	return blogifyClaims.UserID, nil
}

type Authenticator struct {
	service *services.UserService
}

func NewAuthenticator(s *services.UserService) *Authenticator {
	return &Authenticator{
		service: s,
	}
}

func (a *Authenticator) get(id string) (Caller, error) {
	user, err := a.service.Get(id)
	if err != nil {
		return Caller{}, err
	}

	return callerFromUser(user), nil
}

// Authenticated requires a valid token mapping to a stored user.
func (a *Authenticator) Authenticated(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, err := extractUserID(ctx)
		if err != nil {
			return nil, err
		}

		caller, err := a.get(userID)
		if err != nil {
			return nil, err
		}

		ctx = context.WithValue(ctx, callerKey, caller)
		return next(ctx, req)
	}
}

// Optional loads the caller when a token is present and lets anonymous
// requests through with no caller set.
func (a *Authenticator) Optional(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, err := extractUserID(ctx)
		if err != nil {
			return next(ctx, req)
		}

		caller, err := a.get(userID)
		if err != nil {
			return next(ctx, req)
		}

		ctx = context.WithValue(ctx, callerKey, caller)
		return next(ctx, req)
	}
}

func callerFromUser(user blogify.User) Caller {
	return Caller{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
