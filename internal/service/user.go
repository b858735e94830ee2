package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/userhub-dev/userhub-server/internal/logger"
	"github.com/userhub-dev/userhub-server/internal/model"
)

// User orchestrates user operations: it validates input before the
// store is touched and delegates the rest to the UserStore.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) CreateUser(ctx context.Context, firstName, lastName, email string) (model.User, error) {
	user, err := model.NewUser(strings.TrimSpace(firstName), strings.TrimSpace(lastName), strings.TrimSpace(email))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to construct user: %w", err)
	}

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", created.ID, "email", created.Email)

	return created, nil
}

func (s *User) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (s *User) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (s *User) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *User) SearchUsersByName(ctx context.Context, term string) ([]model.User, error) {
	users, err := s.userStore.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update. An update that supplies no
// fields, or supplies an empty value for a required field, is rejected
// before the store is touched.
func (s *User) UpdateUser(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	if err := validateUpdateParams(params); err != nil {
		return model.User{}, err
	}

	updated, err := s.userStore.Update(ctx, id, params)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", "user_id", updated.ID)

	return updated, nil
}

func (s *User) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id)

	return nil
}

func (s *User) CountUsers(ctx context.Context) (int, error) {
	count, err := s.userStore.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func (s *User) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.userStore.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func validateUpdateParams(params model.UpdateUserParams) error {
	if params.Empty() {
		return fmt.Errorf("no fields to update: %w", model.ErrInvalidInput)
	}
	for _, field := range []*string{params.FirstName, params.LastName, params.Email} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return fmt.Errorf("empty field in update: %w", model.ErrInvalidInput)
		}
	}

	return nil
}
