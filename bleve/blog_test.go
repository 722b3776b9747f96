package bleve

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

func createIndex(t *testing.T) (*BlogIndex, func()) {
	dir, err := os.MkdirTemp("", "blogify-index")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	index := &BlogIndex{}
	if err := index.Open(filepath.Join(dir, "blogs.index")); err != nil {
		os.RemoveAll(dir)
		t.Fatal("error creating index:", err)
	}

	return index, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func TestBlogIndex_Search(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	blogs := []*blogify.Blog{
		{ID: "b1", Title: "A Weekend in Kyoto", Content: "temples and tea", Category: "Travel"},
		{ID: "b2", Title: "Sourdough for Impatient People", Content: "flour, water, salt", Category: "Food"},
		{ID: "b3", Title: "Why I Still Write Plain SQL", Content: "databases and queries", Category: "Technology"},
		{ID: "b4", Title: "Street Food in Oaxaca", Content: "tlayudas after midnight", Category: "Food"},
	}
	for _, blog := range blogs {
		require.NoError(t, index.Index(blog))
	}

	tts := map[string]struct {
		search   blogify.SearchParams
		expected []string
	}{
		"match all": {
			search:   blogify.SearchParams{Limit: 10},
			expected: []string{"b1", "b2", "b3", "b4"},
		},
		"title word": {
			search:   blogify.SearchParams{Q: "kyoto", Limit: 10},
			expected: []string{"b1"},
		},
		"prefix": {
			search:   blogify.SearchParams{Q: "sour", Limit: 10},
			expected: []string{"b2"},
		},
		"content word": {
			search:   blogify.SearchParams{Q: "midnight", Limit: 10},
			expected: []string{"b4"},
		},
		"category filter": {
			search:   blogify.SearchParams{Categories: []string{"Food"}, Limit: 10},
			expected: []string{"b2", "b4"},
		},
		"word and category": {
			search:   blogify.SearchParams{Q: "street", Categories: []string{"Food"}, Limit: 10},
			expected: []string{"b4"},
		},
		"no match": {
			search:   blogify.SearchParams{Q: "zzz", Limit: 10},
			expected: []string{},
		},
	}

	for name, tt := range tts {
		res, err := index.Search(tt.search)
		require.NoError(t, err, name)

		got := append([]string{}, res.IDs...)
		sort.Strings(got)
		assert.Equal(t, tt.expected, got, name)
		assert.Equal(t, uint64(len(tt.expected)), res.Pagination.Total, name)
	}
}

func TestBlogIndex_DeleteAndReindex(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	blog := blogify.Blog{ID: "b1", Title: "A Weekend in Kyoto", Category: "Travel"}
	require.NoError(t, index.Index(&blog))

	require.NoError(t, index.Delete("b1"))
	res, err := index.Search(blogify.SearchParams{Q: "kyoto", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, res.IDs)

	// Reindexing after an edit replaces the old document.
	blog.Title = "A Week in Tokyo"
	require.NoError(t, index.Index(&blog))
	res, err = index.Search(blogify.SearchParams{Q: "tokyo", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, res.IDs)
}
