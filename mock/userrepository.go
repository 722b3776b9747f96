package mock

import (
	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

type UserRepository struct {
	users []blogify.User
}

func (r *UserRepository) Get(id string) (*blogify.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(email string) (*blogify.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Insert(user *blogify.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) List() ([]blogify.User, error) {
	return append([]blogify.User{}, r.users...), nil
}

type SessionRepository struct {
	user *blogify.User
}

func (r *SessionRepository) Get() (*blogify.User, error) {
	return r.user, nil
}

func (r *SessionRepository) Set(user *blogify.User) error {
	r.user = user
	return nil
}

func (r *SessionRepository) Clear() error {
	r.user = nil
	return nil
}
