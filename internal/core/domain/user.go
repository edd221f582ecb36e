package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidUserData    = errors.New("invalid user data")
)

type User struct {
	ID    string
	Name  string
	Email string
}
