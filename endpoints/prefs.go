package endpoints

import (
	"context"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

type PreferencesEndpoint struct {
	service *services.PreferencesService
}

func NewPreferencesEndpoint(s *services.PreferencesService) *PreferencesEndpoint {
	return &PreferencesEndpoint{
		service: s,
	}
}

func (ep *PreferencesEndpoint) Get(ctx context.Context, _ interface{}) (interface{}, error) {
	return ep.respond(ep.service.Get())
}

func (ep *PreferencesEndpoint) ToggleTheme(ctx context.Context, _ interface{}) (interface{}, error) {
	return ep.respond(ep.service.ToggleTheme())
}

func (ep *PreferencesEndpoint) ToggleView(ctx context.Context, _ interface{}) (interface{}, error) {
	return ep.respond(ep.service.ToggleView())
}

func (ep *PreferencesEndpoint) DismissIntro(ctx context.Context, _ interface{}) (interface{}, error) {
	return ep.respond(ep.service.DismissIntro())
}

func (ep *PreferencesEndpoint) respond(prefs blogify.Preferences, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": prefs,
	}, nil
}
