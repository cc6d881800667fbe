package store

import (
	"context"
	"errors"

	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/security"
)

// EnsureAdminUser creates the bootstrap admin account if it does not exist
// yet. A no-op when credentials are unset or the username is already taken.
func EnsureAdminUser(ctx context.Context, s Store, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.GetUserByUsername(ctx, username)

	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := security.HashPassword(password)

	if err != nil {
		return err
	}

	_, err = s.CreateUser(ctx, user.CreateUserRequest{
		Username:     username,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	})

	if errors.Is(err, ErrUsernameTaken) {
		// lost a race with another instance; the account exists either way
		return nil
	}

	return err
}
