package postgres

import (
	"context"
	"errors"

	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/jackc/pgx/v5"
)

func (s *Store) GetUser(ctx context.Context, id int) (user.User, error) {
	var u user.User

	err := s.observe("users.get", func() error {
		return s.pool.QueryRow(ctx,
			`SELECT id, username, password, role, created_at FROM users WHERE id = $1`,
			id,
		).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, store.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User

	err := s.observe("users.get_by_username", func() error {
		return s.pool.QueryRow(ctx,
			`SELECT id, username, password, role, created_at FROM users WHERE username = $1`,
			username,
		).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, store.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	role := req.Role

	if role == "" {
		role = user.RoleUser
	}

	var u user.User

	err := s.observe("users.create", func() error {
		return s.pool.QueryRow(ctx,
			`INSERT INTO users (username, password, role)
			 VALUES ($1, $2, $3)
			 RETURNING id, username, password, role, created_at`,
			req.Username, req.PasswordHash, role,
		).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, store.ErrUsernameTaken
		}

		return user.User{}, err
	}

	return u, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, username, passwordHash string) error {
	return s.observe("users.update_password", func() error {
		tag, err := s.pool.Exec(ctx,
			`UPDATE users SET password = $1 WHERE username = $2`,
			passwordHash, username,
		)

		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return store.ErrNotFound
		}

		return nil
	})
}
