package services

import (
	"fmt"

	"github.com/Naitik-Lodhi/Blogify-project/errors"
)

func errBlogNotFound(id string) error {
	return errors.New(fmt.Sprintf("blog %s not found", id), errors.NotFound())
}

func errUserNotFound(id string) error {
	return errors.New(fmt.Sprintf("user %s not found", id), errors.NotFound())
}

var errNotLoggedIn = errors.New("not logged in", errors.Unauthorized())
