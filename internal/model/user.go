package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines storage operations for users.
// Implementations are safe for concurrent use; every mutation either
// fully applies or leaves stored state untouched.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	SearchByName(ctx context.Context, term string) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// User represents a stored user entity. Values are immutable snapshots:
// a change always produces a new value via WithUpdates, never an
// in-place mutation.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateUserParams carries a partial update. Nil fields keep the
// current value.
type UpdateUserParams struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Empty reports whether no field is set.
func (p UpdateUserParams) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil
}

// NewUser constructs a user with a fresh id and creation timestamps.
// It validates that all fields are non-empty; cross-record constraints
// like email uniqueness belong to the store.
func NewUser(firstName, lastName, email string) (User, error) {
	if firstName == "" || lastName == "" || email == "" {
		return User{}, ErrInvalidInput
	}

	now := time.Now()
	return User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// WithUpdates returns a copy of u with the supplied fields replaced and
// UpdatedAt refreshed. ID and CreatedAt never change. u itself is left
// untouched.
func (u User) WithUpdates(params UpdateUserParams) User {
	updated := u
	if params.FirstName != nil {
		updated.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		updated.LastName = *params.LastName
	}
	if params.Email != nil {
		updated.Email = *params.Email
	}
	updated.UpdatedAt = time.Now()

	return updated
}
