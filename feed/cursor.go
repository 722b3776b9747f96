package feed

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

// Cursor tracks how many of the filtered blogs are revealed. Changing the
// filter or the query resets it to the first page.
type Cursor struct {
	filter  Filter
	query   string
	visible int
}

func NewCursor() *Cursor {
	return &Cursor{
		filter:  FilterAll,
		visible: PageSize,
	}
}

func (c *Cursor) Filter() Filter { return c.filter }
func (c *Cursor) Query() string  { return c.query }

func (c *Cursor) SetFilter(f Filter) {
	if f == c.filter {
		return
	}
	c.filter = f
	c.visible = PageSize
}

func (c *Cursor) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	c.visible = PageSize
}

func (c *Cursor) LoadMore() {
	c.visible += PageSize
}

// Page slices the filtered list down to the revealed window.
func (c *Cursor) Page(filtered []blogify.Blog) []blogify.Blog {
	if c.visible >= len(filtered) {
		return filtered
	}
	return filtered[:c.visible]
}

// HasMore reports whether another load-more step would reveal anything.
func (c *Cursor) HasMore(filtered []blogify.Blog) bool {
	return c.visible < len(filtered)
}
