// ABOUTME: Store interfaces and data types for sweetshop persistence
// ABOUTME: Defines User, Sweet structs and the store interfaces for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrUserNotFound is returned when a requested user does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrSweetNotFound is returned when a requested sweet does not exist
var ErrSweetNotFound = errors.New("sweet not found")

// ErrEmailExists is returned when trying to register an email that is already taken
var ErrEmailExists = errors.New("email already registered")

// User represents a registered account. The password is stored only as a
// bcrypt hash; the plaintext never reaches this package.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Sweet represents a single catalog item.
type Sweet struct {
	ID        string
	Name      string
	Category  string
	Price     float64
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// SweetStore defines the interface for catalog persistence.
type SweetStore interface {
	CreateSweet(ctx context.Context, sweet *Sweet) error
	GetSweet(ctx context.Context, id string) (*Sweet, error)
	ListSweets(ctx context.Context) ([]*Sweet, error)
	UpdateSweet(ctx context.Context, sweet *Sweet) error
	DeleteSweet(ctx context.Context, id string) error
}
