package blogify

import (
	"time"
)

type Blog struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`

	AuthorID string    `json:"authorId"`
	Date     time.Time `json:"date"`

	// Image holds an optional data-URI encoded image.
	Image string `json:"image,omitempty"`
}

type Pagination struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type SearchParams struct {
	Q          string   `json:"q"`
	Categories []string `json:"categories"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type SearchResults struct {
	IDs        []string
	Pagination Pagination
}

// BlogRepository persists the ordered blog collection. List returns the
// blogs newest first: Insert prepends, and the order is kept across
// updates and deletes.
type BlogRepository interface {
	Get(string) (*Blog, error)
	List() ([]Blog, error)
	Insert(*Blog) error
	Update(*Blog) error
	Delete(string) error
}

type BlogIndex interface {
	Index(*Blog) error
	Search(SearchParams) (SearchResults, error)
	Delete(string) error
}

// FavoriteRepository stores the set of favorited blog ids of each user.
type FavoriteRepository interface {
	List(userID string) ([]string, error)
	Save(userID string, ids []string) error
}

// MetaRepository tracks whether a user ever created a blog on this
// profile, as opposed to the bundled dataset.
type MetaRepository interface {
	UserAddedBlogs() (bool, error)
	SetUserAddedBlogs() error
}
