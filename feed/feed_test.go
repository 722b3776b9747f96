package feed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

func TestVisible_Filters(t *testing.T) {
	blogs := []blogify.Blog{
		{ID: "b1", Title: "Hello World", Content: "greetings", Category: "Tech", AuthorID: "u1"},
		{ID: "b2", Title: "Second", Content: "other things", Category: "Food", AuthorID: "u2"},
		{ID: "b3", Title: "Third", Content: "hello again", Category: "Tech", AuthorID: "u1"},
	}

	tts := map[string]struct {
		filter    Filter
		query     string
		userID    string
		favorites []string
		expected  []string
	}{
		"all": {
			filter:   FilterAll,
			expected: []string{"b1", "b2", "b3"},
		},
		"mine": {
			filter:   FilterMine,
			userID:   "u1",
			expected: []string{"b1", "b3"},
		},
		"mine without user": {
			filter:   FilterMine,
			expected: []string{},
		},
		"favorites": {
			filter:    FilterFavorites,
			userID:    "u1",
			favorites: []string{"b2"},
			expected:  []string{"b2"},
		},
		"favorites empty set": {
			filter:   FilterFavorites,
			userID:   "u1",
			expected: []string{},
		},
		"query case-insensitive on title": {
			filter:   FilterAll,
			query:    "hello",
			expected: []string{"b1", "b3"},
		},
		"query on category": {
			filter:   FilterAll,
			query:    "food",
			expected: []string{"b2"},
		},
		"query no match": {
			filter:   FilterAll,
			query:    "zzz",
			expected: []string{},
		},
		"blank query matches everything": {
			filter:   FilterAll,
			query:    "   ",
			expected: []string{"b1", "b2", "b3"},
		},
		"filter and query combine": {
			filter:   FilterMine,
			userID:   "u1",
			query:    "third",
			expected: []string{"b3"},
		},
	}

	for name, tt := range tts {
		got := Visible(blogs, tt.filter, tt.query, tt.userID, tt.favorites)

		ids := make([]string, 0, len(got))
		for _, b := range got {
			ids = append(ids, b.ID)
		}
		assert.Equal(t, tt.expected, ids, name)
	}
}

func TestVisible_PreservesOrder(t *testing.T) {
	var blogs []blogify.Blog
	for i := 0; i < 10; i++ {
		blogs = append(blogs, blogify.Blog{ID: fmt.Sprintf("b%d", i), Title: "post", AuthorID: "u1"})
	}

	got := Visible(blogs, FilterAll, "post", "u1", nil)
	assert.Len(t, got, 10)
	for i, b := range got {
		assert.Equal(t, fmt.Sprintf("b%d", i), b.ID)
	}
}

func TestCursor_Pagination(t *testing.T) {
	var blogs []blogify.Blog
	for i := 0; i < 10; i++ {
		blogs = append(blogs, blogify.Blog{ID: fmt.Sprintf("b%d", i)})
	}

	c := NewCursor()
	assert.Len(t, c.Page(blogs), 6)
	assert.True(t, c.HasMore(blogs))

	c.LoadMore()
	assert.Len(t, c.Page(blogs), 10)
	assert.False(t, c.HasMore(blogs))

	// Another step stays capped at the total.
	c.LoadMore()
	assert.Len(t, c.Page(blogs), 10)
}

func TestCursor_ResetsOnChange(t *testing.T) {
	var blogs []blogify.Blog
	for i := 0; i < 20; i++ {
		blogs = append(blogs, blogify.Blog{ID: fmt.Sprintf("b%d", i)})
	}

	c := NewCursor()
	c.LoadMore()
	assert.Len(t, c.Page(blogs), 12)

	c.SetQuery("kyoto")
	assert.Len(t, c.Page(blogs), 6)

	c.LoadMore()
	assert.Len(t, c.Page(blogs), 12)

	c.SetFilter(FilterMine)
	assert.Len(t, c.Page(blogs), 6)

	// Setting the same value again does not reset.
	c.LoadMore()
	c.SetFilter(FilterMine)
	c.SetQuery("kyoto")
	assert.Len(t, c.Page(blogs), 12)
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterMine, ParseFilter("mine"))
	assert.Equal(t, FilterFavorites, ParseFilter("favorites"))
	assert.Equal(t, FilterAll, ParseFilter("all"))
	assert.Equal(t, FilterAll, ParseFilter("whatever"))
}
