package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		wantErr   error
	}{
		{
			name:      "valid input",
			firstName: "John",
			lastName:  "Doe",
			email:     "john@example.com",
		},
		{
			name:     "empty first name",
			lastName: "Doe",
			email:    "john@example.com",
			wantErr:  ErrInvalidInput,
		},
		{
			name:      "empty last name",
			firstName: "John",
			email:     "john@example.com",
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "empty email",
			firstName: "John",
			lastName:  "Doe",
			wantErr:   ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.firstName, tt.lastName, tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.firstName, user.FirstName)
			assert.Equal(t, tt.lastName, user.LastName)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
			assert.Equal(t, user.CreatedAt, user.UpdatedAt)
		})
	}
}

func TestNewUser_UniqueIDs(t *testing.T) {
	a, err := NewUser("John", "Doe", "john@example.com")
	require.NoError(t, err)
	b, err := NewUser("John", "Doe", "john@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestUser_WithUpdates(t *testing.T) {
	original, err := NewUser("John", "Doe", "john@example.com")
	require.NoError(t, err)

	newLast := "Smith"
	updated := original.WithUpdates(UpdateUserParams{LastName: &newLast})

	// Only the supplied field changes.
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.FirstName, updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, original.Email, updated.Email)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(original.UpdatedAt))

	// The original value is untouched.
	assert.Equal(t, "Doe", original.LastName)
}

func TestUser_WithUpdates_AllFields(t *testing.T) {
	original, err := NewUser("John", "Doe", "john@example.com")
	require.NoError(t, err)

	first := "Jane"
	last := "Smith"
	email := "jane@example.com"
	updated := original.WithUpdates(UpdateUserParams{
		FirstName: &first,
		LastName:  &last,
		Email:     &email,
	})

	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestUser_WithUpdates_Empty(t *testing.T) {
	original, err := NewUser("John", "Doe", "john@example.com")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	updated := original.WithUpdates(UpdateUserParams{})

	assert.Equal(t, original.FirstName, updated.FirstName)
	assert.Equal(t, original.LastName, updated.LastName)
	assert.Equal(t, original.Email, updated.Email)
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))
}

func TestUpdateUserParams_Empty(t *testing.T) {
	assert.True(t, UpdateUserParams{}.Empty())

	first := "Jane"
	assert.False(t, UpdateUserParams{FirstName: &first}.Empty())
}
