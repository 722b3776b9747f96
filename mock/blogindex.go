package mock

import (
	"strings"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

// BlogIndex matches queries as naive substrings, enough for wiring tests
// that do not care about ranking.
type BlogIndex struct {
	docs map[string]blogify.Blog
}

func (s *BlogIndex) Index(blog *blogify.Blog) error {
	if s.docs == nil {
		s.docs = make(map[string]blogify.Blog)
	}
	s.docs[blog.ID] = *blog
	return nil
}

func (s *BlogIndex) Delete(id string) error {
	delete(s.docs, id)
	return nil
}

func (s *BlogIndex) Search(search blogify.SearchParams) (blogify.SearchResults, error) {
	q := strings.ToLower(search.Q)

	var ids []string
	for id, blog := range s.docs {
		text := strings.ToLower(blog.Title + " " + blog.Content + " " + blog.Category)
		if q != "" && !strings.Contains(text, q) {
			continue
		}
		if len(search.Categories) > 0 && !containsString(search.Categories, blog.Category) {
			continue
		}
		ids = append(ids, id)
	}

	return blogify.SearchResults{
		IDs: ids,
		Pagination: blogify.Pagination{
			Total:  uint64(len(ids)),
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func containsString(a []string, v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}
