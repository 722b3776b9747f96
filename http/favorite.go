package http

import (
	"context"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Naitik-Lodhi/Blogify-project/endpoints"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func RegisterFavoriteEndpoints(srv Server, favorites *services.FavoriteService, users *services.UserService, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	authenticator := endpoints.NewAuthenticator(users)
	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewFavoriteEndpoint(favorites)

	listHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.List)),
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	toggleHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Toggle)),
		decodeToggleFavoriteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/blogify/favorites", "GET", listHandler)
	srv.RegisterHandler("/blogify/favorites/:id", "POST", toggleHandler)
}

func decodeToggleFavoriteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["id"], nil
}
