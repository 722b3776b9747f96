package endpoints

import (
	"context"
	"net/http"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
	"github.com/Naitik-Lodhi/Blogify-project/feed"
	"github.com/Naitik-Lodhi/Blogify-project/services"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request")
)

type BlogEndpoint struct {
	blogs     *services.BlogService
	feed      *services.FeedService
	favorites *services.FavoriteService
}

func NewBlogEndpoint(blogs *services.BlogService, f *services.FeedService, favorites *services.FavoriteService) *BlogEndpoint {
	return &BlogEndpoint{
		blogs:     blogs,
		feed:      f,
		favorites: favorites,
	}
}

type FeedRequest struct {
	Filter string
	Q      string
	Count  int
}

func (ep *BlogEndpoint) Feed(ctx context.Context, r interface{}) (interface{}, error) {
	caller := MaybeFromContext(ctx)

	req, ok := r.(FeedRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	page, err := ep.feed.Visible(caller.ID, feed.ParseFilter(req.Filter), req.Q, req.Count)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data":    page.Blogs,
		"total":   page.Total,
		"hasMore": page.HasMore,
	}, nil
}

type SearchRequest struct {
	Q          string
	Categories []string
	Limit      int
	Offset     int
}

func (ep *BlogEndpoint) Search(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(SearchRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	res, err := ep.blogs.Search(req.Q, req.Categories, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data":       res.Blogs,
		"pagination": res.Pagination,
	}, nil
}

func (ep *BlogEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	blog, err := ep.blogs.Get(id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": blog,
	}, nil
}

func (ep *BlogEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	blog, ok := r.(blogify.Blog)
	if !ok {
		return nil, errInvalidRequest
	}

	blog, err = ep.blogs.Create(caller.ID, blog)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": blog,
	}, nil
}

func (ep *BlogEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	blog, ok := r.(blogify.Blog)
	if !ok {
		return nil, errInvalidRequest
	}

	blog, err = ep.blogs.Update(caller.ID, blog)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": blog,
	}, nil
}

func (ep *BlogEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.blogs.Delete(caller.ID, id); err != nil {
		return nil, err
	}

	return statusCoder{code: http.StatusNoContent}, nil
}

// statusCoder is useful to return http responses with a status that is
// not 200 but is not an error either.
type statusCoder struct {
	code int
}

func (s statusCoder) StatusCode() int { return s.code }
