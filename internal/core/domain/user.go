package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrInvalidToken = errors.New("invalid token")
var ErrMissingSubject = errors.New("token has no subject")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models a registered account. ID, Username, and Email are each unique
// across all users; the store enforces this with unique indexes.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio,omitempty"`
	ProfilePic   string    `json:"profile_pic,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Sanitized returns a copy safe to hand to the HTTP layer: the password hash
// never crosses that boundary.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
