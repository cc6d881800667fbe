package store_test

import (
	"context"
	"testing"

	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/security"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/codecpt/portfolio-api/internal/store/memory"
)

func TestEnsureAdminUserCreatesAdmin(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	err := store.EnsureAdminUser(ctx, s, "admin", "Sup3rSecret")

	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	u, err := s.GetUserByUsername(ctx, "admin")

	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if u.Role != user.RoleAdmin {
		t.Fatalf("role %q, want admin", u.Role)
	}

	if err := security.CheckPassword(u.PasswordHash, "Sup3rSecret"); err != nil {
		t.Fatal("stored hash does not match the password")
	}
}

func TestEnsureAdminUserIsANoOpWhenUnsetOrPresent(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	if err := store.EnsureAdminUser(ctx, s, "", ""); err != nil {
		t.Fatalf("blank credentials: %v", err)
	}

	if _, err := s.GetUserByUsername(ctx, ""); err == nil {
		t.Fatal("blank credentials created a user")
	}

	if err := store.EnsureAdminUser(ctx, s, "admin", "Sup3rSecret"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}

	first, _ := s.GetUserByUsername(ctx, "admin")

	// second call must not touch the existing account
	if err := store.EnsureAdminUser(ctx, s, "admin", "Different1"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	second, _ := s.GetUserByUsername(ctx, "admin")

	if second.PasswordHash != first.PasswordHash {
		t.Fatal("existing admin password was overwritten")
	}
}
