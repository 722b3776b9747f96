package endpoints

import (
	"context"

	"github.com/Naitik-Lodhi/Blogify-project/services"
)

type FavoriteEndpoint struct {
	service *services.FavoriteService
}

func NewFavoriteEndpoint(s *services.FavoriteService) *FavoriteEndpoint {
	return &FavoriteEndpoint{
		service: s,
	}
}

func (ep *FavoriteEndpoint) Toggle(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	blogID, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	favorite, err := ep.service.Toggle(caller.ID, blogID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"blogId":   blogID,
			"favorite": favorite,
		},
	}, nil
}

func (ep *FavoriteEndpoint) List(ctx context.Context, _ interface{}) (interface{}, error) {
	caller, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := ep.service.List(caller.ID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}

	return map[string]interface{}{
		"data": ids,
	}, nil
}
