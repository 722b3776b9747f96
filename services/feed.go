package services

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/feed"
)

// FeedService derives the visible blog list for a caller. The cursor is
// client-held (the count parameter), so the service stays stateless.
type FeedService struct {
	blogs     blogify.BlogRepository
	favorites blogify.FavoriteRepository
}

func NewFeedService(blogs blogify.BlogRepository, favorites blogify.FavoriteRepository) *FeedService {
	return &FeedService{
		blogs:     blogs,
		favorites: favorites,
	}
}

type FeedPage struct {
	Blogs []blogify.Blog `json:"blogs"`

	// Total counts the filtered blogs, visible or not.
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Visible filters the collection by mode and query for the given user and
// slices it down to count entries. A count of zero or less means the
// first page.
func (s *FeedService) Visible(userID string, filter feed.Filter, query string, count int) (FeedPage, error) {
	blogs, err := s.blogs.List()
	if err != nil {
		return FeedPage{}, err
	}

	var favorites []string
	if filter == feed.FilterFavorites && userID != "" {
		favorites, err = s.favorites.List(userID)
		if err != nil {
			return FeedPage{}, err
		}
	}

	filtered := feed.Visible(blogs, filter, query, userID, favorites)

	if count <= 0 {
		count = feed.PageSize
	}
	visible := filtered
	if count < len(filtered) {
		visible = filtered[:count]
	}

	return FeedPage{
		Blogs:   visible,
		Total:   len(filtered),
		HasMore: count < len(filtered),
	}, nil
}
