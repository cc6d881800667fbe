package memory

import (
	"context"
	"time"

	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/store"
)

func (s *Store) GetUser(ctx context.Context, id int) (user.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	u, ok := s.users[id]

	if !ok {
		return user.User{}, store.ErrNotFound
	}

	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}

	return user.User{}, store.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for _, existing := range s.users {
		if existing.Username == req.Username {
			return user.User{}, store.ErrUsernameTaken
		}
	}

	role := req.Role

	if role == "" {
		role = user.RoleUser
	}

	u := user.User{
		ID:           s.nextUserID,
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	s.nextUserID++
	s.users[u.ID] = u

	return u, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, username, passwordHash string) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for id, u := range s.users {
		if u.Username == username {
			u.PasswordHash = passwordHash
			s.users[id] = u

			return nil
		}
	}

	return store.ErrNotFound
}
