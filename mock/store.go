package mock

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

type FavoriteRepository struct {
	sets map[string][]string
}

func (r *FavoriteRepository) List(userID string) ([]string, error) {
	return append([]string{}, r.sets[userID]...), nil
}

func (r *FavoriteRepository) Save(userID string, ids []string) error {
	if r.sets == nil {
		r.sets = make(map[string][]string)
	}
	r.sets[userID] = append([]string{}, ids...)
	return nil
}

type MetaRepository struct {
	added bool
}

func (r *MetaRepository) UserAddedBlogs() (bool, error) {
	return r.added, nil
}

func (r *MetaRepository) SetUserAddedBlogs() error {
	r.added = true
	return nil
}

type PreferencesRepository struct {
	prefs *blogify.Preferences
}

func (r *PreferencesRepository) Get() (blogify.Preferences, error) {
	if r.prefs == nil {
		return blogify.Preferences{Theme: blogify.ThemeLight, View: blogify.ViewGrid}, nil
	}
	return *r.prefs, nil
}

func (r *PreferencesRepository) Save(prefs blogify.Preferences) error {
	r.prefs = &prefs
	return nil
}
