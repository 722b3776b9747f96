package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/endpoints"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/jwt"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

func RegisterBlogEndpoints(
	srv Server,
	blogs *services.BlogService,
	feed *services.FeedService,
	favorites *services.FavoriteService,
	users *services.UserService,
	jwtKey []byte,
) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	authenticator := endpoints.NewAuthenticator(users)
	jwtMiddleware := jwt.Middleware(jwtKey)
	optionalJWTMiddleware := jwt.OptionalMiddleware(jwtKey)

	ep := endpoints.NewBlogEndpoint(blogs, feed, favorites)

	// The feed is browsable logged out: the token is optional.
	feedHandler := kithttp.NewServer(
		optionalJWTMiddleware(authenticator.Optional(ep.Feed)),
		decodeFeedRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	searchHandler := kithttp.NewServer(
		optionalJWTMiddleware(authenticator.Optional(ep.Search)),
		decodeSearchRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getHandler := kithttp.NewServer(
		optionalJWTMiddleware(authenticator.Optional(ep.Get)),
		decodeBlogIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Create)),
		decodeCreateBlogRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Update)),
		decodeUpdateBlogRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Delete)),
		decodeBlogIDRequest, // decoder is the same as get
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/blogify/blogs", "GET", feedHandler)
	srv.RegisterHandler("/blogify/blogs/search", "GET", searchHandler)
	srv.RegisterHandler("/blogify/blogs", "POST", createHandler)
	srv.RegisterHandler("/blogify/blogs/:id", "GET", getHandler)
	srv.RegisterHandler("/blogify/blogs/:id", "PUT", updateHandler)
	srv.RegisterHandler("/blogify/blogs/:id", "DELETE", deleteHandler)
}

func decodeFeedRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	req := endpoints.FeedRequest{
		Filter: r.URL.Query().Get("filter"),
		Q:      r.URL.Query().Get("q"),
	}

	if count := r.URL.Query().Get("count"); count != "" {
		c, err := strconv.Atoi(count)
		if err != nil {
			return nil, errors.New("invalid count", errors.BadRequest(), errors.WithCause(err))
		}
		req.Count = c
	}

	return req, nil
}

func decodeSearchRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	req := endpoints.SearchRequest{
		Q:          r.URL.Query().Get("q"),
		Categories: r.URL.Query()["category"],
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil {
			return nil, errors.New("invalid limit", errors.BadRequest(), errors.WithCause(err))
		}
		req.Limit = l
	}

	if offset := r.URL.Query().Get("offset"); offset != "" {
		o, err := strconv.Atoi(offset)
		if err != nil {
			return nil, errors.New("invalid offset", errors.BadRequest(), errors.WithCause(err))
		}
		req.Offset = o
	}

	return req, nil
}

func decodeBlogIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["id"], nil
}

func decodeCreateBlogRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var blog blogify.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func decodeUpdateBlogRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var blog blogify.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		return nil, err
	}

	// The id in the path wins over the one in the body.
	params := ctx.Value("params").(map[string]string)
	blog.ID = params["id"]

	return blog, nil
}
