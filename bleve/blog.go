package bleve

import (
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/search/query"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

type BlogIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it with the blog mapping when it
// does not exist yet.
func (s *BlogIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		textMapping := bleve.NewTextFieldMapping()
		textMapping.Analyzer = en.AnalyzerName

		categoryMapping := bleve.NewTextFieldMapping()
		categoryMapping.Analyzer = simple.Name

		dm := bleve.NewDocumentMapping()
		dm.AddFieldMappingsAt("title", textMapping)
		dm.AddFieldMappingsAt("content", textMapping)
		dm.AddFieldMappingsAt("category", categoryMapping)

		mapping := bleve.NewIndexMapping()
		mapping.AddDocumentMapping("blog", dm)
		mapping.DefaultMapping = dm

		index, err = bleve.New(path, mapping)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *BlogIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *BlogIndex) Index(blog *blogify.Blog) error {
	data := map[string]interface{}{
		"title":    blog.Title,
		"content":  blog.Content,
		"category": blog.Category,
	}

	return s.index.Index(blog.ID, data)
}

func (s *BlogIndex) Delete(id string) error {
	return s.index.Delete(id)
}

func (s *BlogIndex) Search(search blogify.SearchParams) (blogify.SearchResults, error) {
	q := andQ(
		query.NewMatchAllQuery(),
		s.searchText(search.Q),
		s.termsQuery(search.Categories, "category"),
	)

	searchRequest := bleve.NewSearchRequest(q)

	if search.Limit > 0 {
		searchRequest.Size = int(search.Limit)
	}
	searchRequest.From = int(search.Offset)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return blogify.SearchResults{}, err
	}

	ids := make([]string, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i] = hit.ID
	}

	return blogify.SearchResults{
		IDs: ids,
		Pagination: blogify.Pagination{
			Total:  searchResults.Total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}

// searchText matches every word of the query as a prefix against the
// title, content or category fields.
func (s *BlogIndex) searchText(queryString string) query.Query {
	words := strings.Fields(queryString)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			s.prefixQuery(word, "title", en.AnalyzerName),
			s.prefixQuery(word, "content", en.AnalyzerName),
			s.prefixQuery(word, "category", simple.Name),
		))
	}

	return andQ(ands...)
}

func (s *BlogIndex) prefixQuery(queryString, field, analyzerName string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(analyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncs := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncs[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncs)
}

func (*BlogIndex) termsQuery(terms []string, field string) query.Query {
	if len(terms) == 0 {
		return nil
	}

	ors := make([]query.Query, len(terms))
	for i, term := range terms {
		ors[i] = &query.TermQuery{
			Term:     strings.ToLower(term),
			FieldVal: field,
		}
	}

	return orQ(ors...)
}
