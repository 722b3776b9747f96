package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
)

type BlogService struct {
	repository blogify.BlogRepository
	index      blogify.BlogIndex
	meta       blogify.MetaRepository
}

func NewBlogService(repo blogify.BlogRepository, index blogify.BlogIndex, meta blogify.MetaRepository) *BlogService {
	return &BlogService{
		repository: repo,
		index:      index,
		meta:       meta,
	}
}

// List returns all blogs, newest first.
func (s *BlogService) List() ([]blogify.Blog, error) {
	return s.repository.List()
}

func (s *BlogService) Get(id string) (blogify.Blog, error) {
	blog, err := s.repository.Get(id)
	if err != nil {
		return blogify.Blog{}, err
	}

	if blog == nil {
		return blogify.Blog{}, errBlogNotFound(id)
	}
	return *blog, nil
}

// SeedIfEmpty populates an empty store with the bundled dataset and
// indexes it. It returns the number of blogs inserted: 0 when the store
// already holds anything, which makes it idempotent. Seeding does not
// count as a user adding a blog.
func (s *BlogService) SeedIfEmpty() (int, error) {
	blogs, err := s.repository.List()
	if err != nil {
		return 0, err
	} else if len(blogs) > 0 {
		return 0, nil
	}

	defaults := blogify.DefaultBlogs()

	// Insert prepends, so walk the dataset oldest first to end up with
	// the newest at the head.
	for i := len(defaults) - 1; i >= 0; i-- {
		if err := s.repository.Insert(&defaults[i]); err != nil {
			return 0, err
		}
		if err := s.index.Index(&defaults[i]); err != nil {
			return 0, err
		}
	}

	return len(defaults), nil
}

// Create validates the blog, stamps it and prepends it to the store. The
// caller becomes the author.
func (s *BlogService) Create(callerID string, blog blogify.Blog) (blogify.Blog, error) {
	if callerID == "" {
		return blogify.Blog{}, errNotLoggedIn
	}
	if blog.ID != "" {
		return blogify.Blog{}, errors.New("id should be empty", errors.BadRequest())
	}
	if err := validateBlog(blog); err != nil {
		return blogify.Blog{}, err
	}

	blog.ID = uuid.NewString()
	blog.AuthorID = callerID
	blog.Date = time.Now().UTC()

	if err := s.repository.Insert(&blog); err != nil {
		return blogify.Blog{}, err
	}

	added, err := s.meta.UserAddedBlogs()
	if err != nil {
		return blogify.Blog{}, err
	} else if !added {
		if err := s.meta.SetUserAddedBlogs(); err != nil {
			return blogify.Blog{}, err
		}
	}

	if err := s.index.Index(&blog); err != nil {
		return blogify.Blog{}, err
	}

	return blog, nil
}

// Update replaces the stored blog with the same id. Only the author may
// update; an unknown id is a silent no-op, matching the original. The
// author and creation date cannot be rewritten.
func (s *BlogService) Update(callerID string, blog blogify.Blog) (blogify.Blog, error) {
	if blog.ID == "" {
		return blogify.Blog{}, errors.New("id is missing", errors.BadRequest())
	}
	if err := validateBlog(blog); err != nil {
		return blogify.Blog{}, err
	}

	stored, err := s.repository.Get(blog.ID)
	if err != nil {
		return blogify.Blog{}, err
	} else if stored == nil {
		return blog, nil
	}

	if stored.AuthorID != callerID {
		return blogify.Blog{}, errors.New("only the author can edit a blog", errors.Forbidden())
	}

	blog.AuthorID = stored.AuthorID
	if blog.Date.IsZero() {
		blog.Date = stored.Date
	}

	if err := s.repository.Update(&blog); err != nil {
		return blogify.Blog{}, err
	}
	if err := s.index.Index(&blog); err != nil {
		return blogify.Blog{}, err
	}

	return blog, nil
}

// Delete removes the blog with the given id. Only the author may delete;
// an unknown id is a silent no-op.
func (s *BlogService) Delete(callerID, id string) error {
	stored, err := s.repository.Get(id)
	if err != nil {
		return err
	} else if stored == nil {
		return nil
	}

	if stored.AuthorID != callerID {
		return errors.New("only the author can delete a blog", errors.Forbidden())
	}

	if err := s.repository.Delete(id); err != nil {
		return err
	}
	return s.index.Delete(id)
}

type SearchResults struct {
	Blogs      []blogify.Blog     `json:"blogs"`
	Pagination blogify.Pagination `json:"pagination"`
}

// Search is the ranked full-text lookup backed by the index, as opposed
// to the feed's order-preserving substring filter.
func (s *BlogService) Search(q string, categories []string, offset, limit int) (SearchResults, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	sp := blogify.SearchParams{
		Q:          q,
		Categories: categories,

		Offset: uint64(offset),
		Limit:  uint64(limit),
	}

	res, err := s.index.Search(sp)
	if err != nil {
		return SearchResults{}, err
	}

	blogs := make([]blogify.Blog, 0, len(res.IDs))
	for _, id := range res.IDs {
		blog, err := s.repository.Get(id)
		if err != nil {
			return SearchResults{}, err
		} else if blog != nil {
			blogs = append(blogs, *blog)
		}
	}

	return SearchResults{
		Blogs:      blogs,
		Pagination: res.Pagination,
	}, nil
}

// Reindex rebuilds the index from the store.
func (s *BlogService) Reindex() (int, error) {
	blogs, err := s.repository.List()
	if err != nil {
		return 0, err
	}

	for i := range blogs {
		if err := s.index.Index(&blogs[i]); err != nil {
			return 0, err
		}
	}
	return len(blogs), nil
}

func validateBlog(blog blogify.Blog) error {
	if strings.TrimSpace(blog.Title) == "" {
		return errors.New("title is required", errors.BadRequest())
	}
	if strings.TrimSpace(blog.Content) == "" {
		return errors.New("content is required", errors.BadRequest())
	}
	if strings.TrimSpace(blog.Category) == "" {
		return errors.New("category is required", errors.BadRequest())
	}
	return nil
}
