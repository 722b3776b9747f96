package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/mock"
)

func TestFavoriteService_ToggleIsAnInvolution(t *testing.T) {
	service := NewFavoriteService(&mock.FavoriteRepository{})

	fav, err := service.Toggle("u1", "b1")
	require.NoError(t, err)
	assert.True(t, fav)

	is, err := service.IsFavorite("u1", "b1")
	require.NoError(t, err)
	assert.True(t, is)

	fav, err = service.Toggle("u1", "b1")
	require.NoError(t, err)
	assert.False(t, fav)

	is, err = service.IsFavorite("u1", "b1")
	require.NoError(t, err)
	assert.False(t, is)
}

func TestFavoriteService_ScopedPerUser(t *testing.T) {
	service := NewFavoriteService(&mock.FavoriteRepository{})

	_, err := service.Toggle("u1", "b1")
	require.NoError(t, err)
	_, err = service.Toggle("u1", "b2")
	require.NoError(t, err)
	_, err = service.Toggle("u2", "b3")
	require.NoError(t, err)

	ids, err := service.List("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, ids)

	ids, err = service.List("u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"b3"}, ids)

	// Nobody logged in, nothing favorited.
	ids, err = service.List("")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoriteService_RequiresUser(t *testing.T) {
	service := NewFavoriteService(&mock.FavoriteRepository{})

	_, err := service.Toggle("", "b1")
	require.Error(t, err)
	errors.AssertCode(t, err, http.StatusUnauthorized)
}
