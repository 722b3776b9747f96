package http

import (
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Naitik-Lodhi/Blogify-project/endpoints"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

// Preferences are profile-wide, not per-user, so these routes need no
// token: they mirror keys the original browser profile kept next to the
// session, not behind it.
func RegisterPreferencesEndpoints(srv Server, service *services.PreferencesService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	ep := endpoints.NewPreferencesEndpoint(service)

	getHandler := kithttp.NewServer(ep.Get, decodeEmptyRequest, kithttp.EncodeJSONResponse, opts...)
	themeHandler := kithttp.NewServer(ep.ToggleTheme, decodeEmptyRequest, kithttp.EncodeJSONResponse, opts...)
	viewHandler := kithttp.NewServer(ep.ToggleView, decodeEmptyRequest, kithttp.EncodeJSONResponse, opts...)
	introHandler := kithttp.NewServer(ep.DismissIntro, decodeEmptyRequest, kithttp.EncodeJSONResponse, opts...)

	srv.RegisterHandler("/blogify/preferences", "GET", getHandler)
	srv.RegisterHandler("/blogify/preferences/theme", "POST", themeHandler)
	srv.RegisterHandler("/blogify/preferences/view", "POST", viewHandler)
	srv.RegisterHandler("/blogify/preferences/intro", "POST", introHandler)
}
