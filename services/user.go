package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
	"github.com/Naitik-Lodhi/Blogify-project/errors"
)

type Encoder interface {
	Encode(string) (string, error)
}

type UserService struct {
	repository blogify.UserRepository
	session    blogify.SessionRepository

	encoder Encoder
}

func NewUserService(repo blogify.UserRepository, session blogify.SessionRepository, encoder Encoder) *UserService {
	return &UserService{
		repository: repo,
		session:    session,
		encoder:    encoder,
	}
}

// SignUp creates a new user and makes it the active session. The email
// must not belong to an existing user: the check is an exact,
// case-sensitive match, like the original.
func (s *UserService) SignUp(name, email, password string) (blogify.User, string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return blogify.User{}, "", errors.New("name, email and password are required", errors.BadRequest())
	}

	existing, err := s.repository.GetByEmail(email)
	if err != nil {
		return blogify.User{}, "", err
	} else if existing != nil {
		return blogify.User{}, "", errors.New("user already exists", errors.Conflict())
	}

	user := blogify.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      "user",
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.Insert(&user); err != nil {
		return blogify.User{}, "", err
	}
	if err := s.session.Set(&user); err != nil {
		return blogify.User{}, "", err
	}

	token, err := s.encoder.Encode(user.ID)
	if err != nil {
		return blogify.User{}, "", err
	}

	return user, token, nil
}

// Login matches both email and password exactly against a stored record.
// Any mismatch yields the same error, so the response does not leak which
// field was wrong.
func (s *UserService) Login(email, password string) (blogify.User, string, error) {
	user, err := s.repository.GetByEmail(email)
	if err != nil {
		return blogify.User{}, "", err
	}
	if user == nil || user.Password != password {
		return blogify.User{}, "", errors.New("invalid credentials", errors.Unauthorized())
	}

	if err := s.session.Set(user); err != nil {
		return blogify.User{}, "", err
	}

	token, err := s.encoder.Encode(user.ID)
	if err != nil {
		return blogify.User{}, "", err
	}

	return *user, token, nil
}

// Logout clears the session. It always succeeds, logged in or not.
func (s *UserService) Logout() error {
	return s.session.Clear()
}

// Current returns the session user, nil when nobody is logged in.
func (s *UserService) Current() (*blogify.User, error) {
	return s.session.Get()
}

func (s *UserService) Get(id string) (blogify.User, error) {
	user, err := s.repository.Get(id)
	if err != nil {
		return blogify.User{}, err
	}

	if user == nil {
		return blogify.User{}, errUserNotFound(id)
	}
	return *user, nil
}
