// Package feed derives the visible blog list from the stored collection:
// a mode filter, a free-text filter and a load-more cursor. The whole
// derivation preserves the store's insertion order.
package feed

import (
	"strings"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterMine      Filter = "mine"
	FilterFavorites Filter = "favorites"
)

// PageSize is the number of blogs revealed per load-more step.
const PageSize = 6

// ParseFilter maps a raw string to a Filter, defaulting to FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterMine:
		return FilterMine
	case FilterFavorites:
		return FilterFavorites
	}
	return FilterAll
}

// Visible applies the mode filter then the text filter, keeping the input
// order. userID is the acting user ("" when logged out); favorites is
// that user's favorite set.
func Visible(blogs []blogify.Blog, filter Filter, query string, userID string, favorites []string) []blogify.Blog {
	out := make([]blogify.Blog, 0, len(blogs))

	q := strings.ToLower(strings.TrimSpace(query))
	for _, blog := range blogs {
		if !matchFilter(blog, filter, userID, favorites) {
			continue
		}
		if !matchQuery(blog, q) {
			continue
		}
		out = append(out, blog)
	}

	return out
}

func matchFilter(blog blogify.Blog, filter Filter, userID string, favorites []string) bool {
	switch filter {
	case FilterMine:
		return userID != "" && blog.AuthorID == userID
	case FilterFavorites:
		return contains(favorites, blog.ID)
	}
	return true
}

// matchQuery reports whether the blog matches the lowercased query on any
// of title, content or category. A blank query matches everything.
func matchQuery(blog blogify.Blog, q string) bool {
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(blog.Title), q) ||
		strings.Contains(strings.ToLower(blog.Content), q) ||
		strings.Contains(strings.ToLower(blog.Category), q)
}

func contains(a []string, v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}
