package storage

import "errors"

var (
	ErrEmailTaken   = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")
)

// User is an account record. Passwords are stored and compared as plain text,
// matching the system this backend replaces; session state lives only in the
// client.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
