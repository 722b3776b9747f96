package bolt

import (
	"encoding/json"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

const favoritesKeyPrefix = "favorites_"

// FavoriteRepository stores one set of blog ids per user, each under its
// own favorites_<userID> key.
type FavoriteRepository struct {
	Driver *Driver
}

var _ blogify.FavoriteRepository = (*FavoriteRepository)(nil)

func (r *FavoriteRepository) List(userID string) ([]string, error) {
	data, err := r.Driver.Get(favoritesKeyPrefix + userID)
	if err != nil {
		return nil, err
	} else if data == nil {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

func (r *FavoriteRepository) Save(userID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.Driver.Put(favoritesKeyPrefix+userID, data)
}
