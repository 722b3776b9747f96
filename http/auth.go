package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Naitik-Lodhi/Blogify-project/endpoints"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func RegisterAuthEndpoints(srv Server, service *services.UserService, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	authenticator := endpoints.NewAuthenticator(service)
	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewUserEndpoint(service)

	signUpHandler := kithttp.NewServer(
		makeSignUpEndpoint(service),
		decodeSignUpRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	loginHandler := kithttp.NewServer(
		makeLoginEndpoint(service),
		decodeLoginRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	meHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Me)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	logoutHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Logout)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/blogify/signup", "POST", signUpHandler)
	srv.RegisterHandler("/blogify/login", "POST", loginHandler)
	srv.RegisterHandler("/blogify/logout", "POST", logoutHandler)
	srv.RegisterHandler("/blogify/me", "GET", meHandler)
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func makeSignUpEndpoint(s *services.UserService) endpoint.Endpoint {
	return func(_ context.Context, r interface{}) (interface{}, error) {
		req, ok := r.(signUpRequest)
		if !ok {
			return nil, errInvalidRequest
		}

		user, token, err := s.SignUp(req.Name, req.Email, req.Password)
		if err != nil {
			return nil, err
		}

		return map[string]interface{}{
			"data":         user,
			"access_token": token,
		}, nil
	}
}

func decodeSignUpRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return req, nil
}

func makeLoginEndpoint(s *services.UserService) endpoint.Endpoint {
	return func(_ context.Context, r interface{}) (interface{}, error) {
		req, ok := r.(loginRequest)
		if !ok {
			return nil, errInvalidRequest
		}

		user, token, err := s.Login(req.Email, req.Password)
		if err != nil {
			return nil, err
		}

		return map[string]interface{}{
			"data":         user,
			"access_token": token,
		}, nil
	}
}

func decodeLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeEmptyRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}
