package blogify

import (
	"time"
)

type SigningKey struct {
	Key string `json:"k"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Password is stored as typed. Blogify is a local single-profile
	// application with no remote backend, so there is no hashing.
	Password string `json:"password"`

	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserRepository interface {
	Get(string) (*User, error)
	GetByEmail(string) (*User, error)
	Insert(*User) error
	List() ([]User, error)
}

// SessionRepository holds the single active user of the profile. Get
// returns nil when nobody is logged in.
type SessionRepository interface {
	Get() (*User, error)
	Set(*User) error
	Clear() error
}
