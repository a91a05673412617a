package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrStoreUnavailable = errors.New("store unavailable")
var ErrNoSession = errors.New("no session")
var ErrInsufficientRole = errors.New("insufficient role")
var ErrUserNotFound = errors.New("user not found")

// User models a provisioned staff account. Accounts are created out of band;
// this service only ever reads them.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated pair handed out after a successful login and
// on every session resolution.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
