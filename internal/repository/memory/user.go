// Package memory implements model.UserStore on top of in-process maps.
// It is the authoritative live set: one index by id, one by email, both
// guarded by a single mutex and always updated together.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/userhub-dev/userhub-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository holds the live set of users. The order slice keeps
// creation order so List and SearchByName return deterministic results.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]model.User
	emailIndex map[string]uuid.UUID
	order      []uuid.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[uuid.UUID]model.User),
		emailIndex: make(map[string]uuid.UUID),
		order:      make([]uuid.UUID, 0),
	}
}

// Create stores a new user. The duplicate-email check and the insert
// into both indexes happen under one write lock, so two concurrent
// creates with the same email cannot both succeed.
func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emailIndex[user.Email]; taken {
		return model.User{}, model.ErrDuplicateEmail
	}

	r.byID[user.ID] = user
	r.emailIndex[user.Email] = user.ID
	r.order = append(r.order, user.ID)

	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emailIndex[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return r.byID[id], nil
}

// List returns a point-in-time snapshot of all live users in creation
// order. Mutations after the call do not affect the returned slice.
func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}

	return users, nil
}

// SearchByName returns a snapshot of users whose first or last name
// contains term, case-insensitively, in creation order. An empty term
// matches every user.
func (r *UserRepository) SearchByName(_ context.Context, term string) ([]model.User, error) {
	needle := strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0)
	for _, id := range r.order {
		user := r.byID[id]
		if strings.Contains(strings.ToLower(user.FirstName), needle) ||
			strings.Contains(strings.ToLower(user.LastName), needle) {
			users = append(users, user)
		}
	}

	return users, nil
}

// Update replaces the stored user wholesale with a derived copy. The
// lookup, the collision check and the write to both indexes form one
// critical section; an update keeping its own email is not a collision.
// On failure the stored state is untouched.
func (r *UserRepository) Update(_ context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if params.Email != nil && *params.Email != current.Email {
		if _, taken := r.emailIndex[*params.Email]; taken {
			return model.User{}, model.ErrDuplicateEmail
		}
	}

	updated := current.WithUpdates(params)

	if updated.Email != current.Email {
		delete(r.emailIndex, current.Email)
		r.emailIndex[updated.Email] = id
	}
	r.byID[id] = updated

	return updated, nil
}

// Delete removes the user from both indexes together. The freed email
// is immediately reusable by a subsequent Create.
func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}

	delete(r.byID, id)
	delete(r.emailIndex, user.Email)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

func (r *UserRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}
