package endpoints

import (
	"context"

	"github.com/Naitik-Lodhi/Blogify-project/services"
)

type UserEndpoint struct {
	service *services.UserService
}

func NewUserEndpoint(s *services.UserService) *UserEndpoint {
	return &UserEndpoint{
		service: s,
	}
}

func (ep *UserEndpoint) Me(ctx context.Context, _ interface{}) (interface{}, error) {
	caller, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := ep.service.Get(caller.ID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": user,
	}, nil
}

func (ep *UserEndpoint) Logout(ctx context.Context, _ interface{}) (interface{}, error) {
	if err := ep.service.Logout(); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": "ok",
	}, nil
}
