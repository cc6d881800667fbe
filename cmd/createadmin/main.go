// Command createadmin provisions an admin account against either storage
// backend. Meant for operators, not end users; there is no signup route.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/codecpt/portfolio-api/internal/config"
	"github.com/codecpt/portfolio-api/internal/db"
	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/security"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/codecpt/portfolio-api/internal/store/memory"
	"github.com/codecpt/portfolio-api/internal/store/postgres"
)

func main() {
	var (
		username = flag.String("username", "", "admin username")
		password = flag.String("password", "", "admin password")
		force    = flag.Bool("force", false, "reset the password if the user already exists")
	)

	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "createadmin: -username and -password are required")
		os.Exit(2)
	}

	if err := checkPasswordStrength(*password); err != nil {
		fmt.Fprintln(os.Stderr, "createadmin:", err)
		os.Exit(2)
	}

	cfg := config.Load()

	st, cleanup, err := openStore(cfg)

	if err != nil {
		fmt.Fprintln(os.Stderr, "createadmin:", err)
		os.Exit(1)
	}

	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = provision(ctx, st, *username, *password, *force)

	if err != nil {
		fmt.Fprintln(os.Stderr, "createadmin:", err)
		os.Exit(1)
	}

	fmt.Println("admin account ready:", *username)
}

func openStore(cfg config.Config) (store.Store, func(), error) {
	if cfg.StorageBackend != "postgres" {
		// memory backend only makes sense for smoke tests; the account
		// vanishes with the process
		return memory.NewStore(), func() {}, nil
	}

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		return nil, nil, err
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = db.Migrate(migrateCtx, pool)

	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return postgres.NewStore(pool), pool.Close, nil
}

func provision(ctx context.Context, st store.Store, username, password string, force bool) error {
	hash, err := security.HashPassword(password)

	if err != nil {
		return err
	}

	_, err = st.CreateUser(ctx, user.CreateUserRequest{
		Username:     username,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	})

	if err == nil {
		return nil
	}

	if !errors.Is(err, store.ErrUsernameTaken) {
		return err
	}

	if !force {
		return fmt.Errorf("user %q already exists (use -force to reset the password)", username)
	}

	return st.UpdateUserPassword(ctx, username, hash)
}

func checkPasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain an uppercase letter, a lowercase letter and a digit")
	}

	return nil
}
