package bolt

import (
	"encoding/json"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

const blogsKey = "blogs"

// BlogRepository persists the whole blog collection as one ordered JSON
// array under the blogs key. Every mutation is a full read-modify-write
// cycle: fine at this scale, there is a single logical writer.
type BlogRepository struct {
	Driver *Driver
}

// List returns the stored blogs, newest first. A missing or corrupted
// value reads as an empty collection.
func (r *BlogRepository) List() ([]blogify.Blog, error) {
	data, err := r.Driver.Get(blogsKey)
	if err != nil {
		return nil, err
	} else if data == nil {
		return nil, nil
	}

	var blogs []blogify.Blog
	if err := json.Unmarshal(data, &blogs); err != nil {
		return nil, nil
	}
	return blogs, nil
}

// Get retrieves the blog defined by id. It returns nil when no blog
// matches.
func (r *BlogRepository) Get(id string) (*blogify.Blog, error) {
	blogs, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range blogs {
		if blogs[i].ID == id {
			return &blogs[i], nil
		}
	}
	return nil, nil
}

// Insert prepends the blog to the collection.
func (r *BlogRepository) Insert(blog *blogify.Blog) error {
	blogs, err := r.List()
	if err != nil {
		return err
	}

	blogs = append([]blogify.Blog{*blog}, blogs...)
	return r.save(blogs)
}

// Update replaces the blog with the matching id, keeping its position.
// Unknown ids are a silent no-op.
func (r *BlogRepository) Update(blog *blogify.Blog) error {
	blogs, err := r.List()
	if err != nil {
		return err
	}

	for i := range blogs {
		if blogs[i].ID == blog.ID {
			blogs[i] = *blog
			return r.save(blogs)
		}
	}
	return nil
}

// Delete removes the blog with the matching id, preserving the relative
// order of the others. Unknown ids are a silent no-op.
func (r *BlogRepository) Delete(id string) error {
	blogs, err := r.List()
	if err != nil {
		return err
	}

	for i := range blogs {
		if blogs[i].ID == id {
			blogs = append(blogs[:i], blogs[i+1:]...)
			return r.save(blogs)
		}
	}
	return nil
}

func (r *BlogRepository) save(blogs []blogify.Blog) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return err
	}
	return r.Driver.Put(blogsKey, data)
}
