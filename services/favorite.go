package services

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

type FavoriteService struct {
	repository blogify.FavoriteRepository
}

func NewFavoriteService(repo blogify.FavoriteRepository) *FavoriteService {
	return &FavoriteService{
		repository: repo,
	}
}

// Toggle flips the blog in and out of the user's favorite set and
// reports the new state. Applying it twice restores the original state.
func (s *FavoriteService) Toggle(userID, blogID string) (bool, error) {
	if userID == "" {
		return false, errNotLoggedIn
	}

	ids, err := s.repository.List(userID)
	if err != nil {
		return false, err
	}

	index := -1
	for i, id := range ids {
		if id == blogID {
			index = i
			break
		}
	}

	if index >= 0 {
		ids = append(ids[:index], ids[index+1:]...)
	} else {
		ids = append(ids, blogID)
	}

	if err := s.repository.Save(userID, ids); err != nil {
		return false, err
	}
	return index < 0, nil
}

func (s *FavoriteService) List(userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	return s.repository.List(userID)
}

func (s *FavoriteService) IsFavorite(userID, blogID string) (bool, error) {
	ids, err := s.List(userID)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if id == blogID {
			return true, nil
		}
	}
	return false, nil
}
