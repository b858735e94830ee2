// Package seed loads sample users at process start. It is an ordinary
// caller of the user service, with no privileged access to the store.
package seed

import (
	"context"
	"errors"

	"github.com/userhub-dev/userhub-server/internal/logger"
	"github.com/userhub-dev/userhub-server/internal/model"
	"github.com/userhub-dev/userhub-server/internal/service"
)

type sampleUser struct {
	firstName string
	lastName  string
	email     string
}

var sampleUsers = []sampleUser{
	{"John", "Doe", "john.doe@example.com"},
	{"Jane", "Smith", "jane.smith@example.com"},
	{"Bob", "Brown", "bob.brown@example.com"},
	{"Alice", "Johnson", "alice.johnson@example.com"},
}

// Run creates the sample users through the service. A duplicate email
// means the user is already present and is skipped; any other failure
// aborts the load.
func Run(ctx context.Context, userService *service.User, logger *logger.Logger) error {
	for _, sample := range sampleUsers {
		user, err := userService.CreateUser(ctx, sample.firstName, sample.lastName, sample.email)
		if errors.Is(err, model.ErrDuplicateEmail) {
			logger.Info("sample user already present, skipping", "email", sample.email)
			continue
		}
		if err != nil {
			return err
		}
		logger.Info("sample user loaded", "user_id", user.ID, "email", user.Email)
	}

	return nil
}
