package bolt

import (
	"encoding/json"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

const usersKey = "users"

type UserRepository struct {
	Driver *Driver
}

func (r *UserRepository) List() ([]blogify.User, error) {
	data, err := r.Driver.Get(usersKey)
	if err != nil {
		return nil, err
	} else if data == nil {
		return nil, nil
	}

	var users []blogify.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func (r *UserRepository) Get(id string) (*blogify.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByEmail looks a user up by exact email match. The comparison is
// case-sensitive, matching the original behaviour.
func (r *UserRepository) GetByEmail(email string) (*blogify.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Insert(user *blogify.User) error {
	users, err := r.List()
	if err != nil {
		return err
	}

	users = append(users, *user)
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.Driver.Put(usersKey, data)
}
