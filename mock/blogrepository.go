package mock

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

// BlogRepository is an in-memory, slice-backed stand-in keeping the same
// insertion-order contract as the bolt repository.
type BlogRepository struct {
	blogs []blogify.Blog
}

func (r *BlogRepository) Get(id string) (*blogify.Blog, error) {
	for i := range r.blogs {
		if r.blogs[i].ID == id {
			blog := r.blogs[i]
			return &blog, nil
		}
	}
	return nil, nil
}

func (r *BlogRepository) List() ([]blogify.Blog, error) {
	return append([]blogify.Blog{}, r.blogs...), nil
}

func (r *BlogRepository) Insert(blog *blogify.Blog) error {
	r.blogs = append([]blogify.Blog{*blog}, r.blogs...)
	return nil
}

func (r *BlogRepository) Update(blog *blogify.Blog) error {
	for i := range r.blogs {
		if r.blogs[i].ID == blog.ID {
			r.blogs[i] = *blog
			return nil
		}
	}
	return nil
}

func (r *BlogRepository) Delete(id string) error {
	for i := range r.blogs {
		if r.blogs[i].ID == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return nil
		}
	}
	return nil
}
