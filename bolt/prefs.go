package bolt

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

const (
	themeKey     = "themeMode"
	viewKey      = "viewMode"
	hideIntroKey = "hideIntroPopup"
)

// PreferencesRepository keeps each display preference under its own key,
// the way the original profile stored them.
type PreferencesRepository struct {
	Driver *Driver
}

func (r *PreferencesRepository) Get() (blogify.Preferences, error) {
	prefs := blogify.Preferences{
		Theme: blogify.ThemeLight,
		View:  blogify.ViewGrid,
	}

	if data, err := r.Driver.Get(themeKey); err != nil {
		return prefs, err
	} else if string(data) == blogify.ThemeDark {
		prefs.Theme = blogify.ThemeDark
	}

	if data, err := r.Driver.Get(viewKey); err != nil {
		return prefs, err
	} else if string(data) == blogify.ViewList {
		prefs.View = blogify.ViewList
	}

	if data, err := r.Driver.Get(hideIntroKey); err != nil {
		return prefs, err
	} else if string(data) == "true" {
		prefs.HideIntro = true
	}

	return prefs, nil
}

func (r *PreferencesRepository) Save(prefs blogify.Preferences) error {
	if err := r.Driver.Put(themeKey, []byte(prefs.Theme)); err != nil {
		return err
	}
	if err := r.Driver.Put(viewKey, []byte(prefs.View)); err != nil {
		return err
	}

	if prefs.HideIntro {
		return r.Driver.Put(hideIntroKey, []byte("true"))
	}
	return r.Driver.Delete(hideIntroKey)
}
