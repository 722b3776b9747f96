package bolt

import (
	"encoding/json"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

const sessionKey = "loggedInUser"

// SessionRepository persists the single active user of the profile under
// the loggedInUser key.
type SessionRepository struct {
	Driver *Driver
}

// Get returns the logged in user, or nil when nobody is. A malformed
// record reads as no session.
func (r *SessionRepository) Get() (*blogify.User, error) {
	data, err := r.Driver.Get(sessionKey)
	if err != nil {
		return nil, err
	} else if data == nil {
		return nil, nil
	}

	var user blogify.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *SessionRepository) Set(user *blogify.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.Driver.Put(sessionKey, data)
}

func (r *SessionRepository) Clear() error {
	return r.Driver.Delete(sessionKey)
}
