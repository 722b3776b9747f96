package services

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

type PreferencesService struct {
	repository blogify.PreferencesRepository
}

func NewPreferencesService(repo blogify.PreferencesRepository) *PreferencesService {
	return &PreferencesService{
		repository: repo,
	}
}

func (s *PreferencesService) Get() (blogify.Preferences, error) {
	return s.repository.Get()
}

func (s *PreferencesService) ToggleTheme() (blogify.Preferences, error) {
	prefs, err := s.repository.Get()
	if err != nil {
		return blogify.Preferences{}, err
	}

	if prefs.Theme == blogify.ThemeDark {
		prefs.Theme = blogify.ThemeLight
	} else {
		prefs.Theme = blogify.ThemeDark
	}

	if err := s.repository.Save(prefs); err != nil {
		return blogify.Preferences{}, err
	}
	return prefs, nil
}

func (s *PreferencesService) ToggleView() (blogify.Preferences, error) {
	prefs, err := s.repository.Get()
	if err != nil {
		return blogify.Preferences{}, err
	}

	if prefs.View == blogify.ViewList {
		prefs.View = blogify.ViewGrid
	} else {
		prefs.View = blogify.ViewList
	}

	if err := s.repository.Save(prefs); err != nil {
		return blogify.Preferences{}, err
	}
	return prefs, nil
}

func (s *PreferencesService) DismissIntro() (blogify.Preferences, error) {
	prefs, err := s.repository.Get()
	if err != nil {
		return blogify.Preferences{}, err
	}

	prefs.HideIntro = true
	if err := s.repository.Save(prefs); err != nil {
		return blogify.Preferences{}, err
	}
	return prefs, nil
}
