package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	srv := miniredis.RunT(t)

	store := NewRedisStore(RedisConfig{Addr: srv.Addr()})

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	sess := Session{
		UserID:    7,
		Username:  "admin",
		Role:      "admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if err := store.Save(ctx, "tok", sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.Get(ctx, "tok")

	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}

	if got.UserID != sess.UserID || got.Username != sess.Username || got.Role != sess.Role {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestRedisStoreUnknownToken(t *testing.T) {
	store := newRedisStore(t)

	_, ok, err := store.Get(context.Background(), "missing")

	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if ok {
		t.Fatal("unknown token reported present")
	}
}

func TestRedisStoreKeyExpiresWithSession(t *testing.T) {
	srv := miniredis.RunT(t)
	store := NewRedisStore(RedisConfig{Addr: srv.Addr()})

	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	sess := Session{
		UserID:    1,
		Username:  "admin",
		Role:      "admin",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	if err := store.Save(ctx, "tok", sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	srv.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, "tok")

	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if ok {
		t.Fatal("session survived its TTL")
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	sess := Session{UserID: 1, Username: "admin", Role: "admin", ExpiresAt: time.Now().Add(time.Hour)}

	if err := store.Save(ctx, "tok", sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// deleting again is fine
	if err := store.Delete(ctx, "tok"); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	_, ok, _ := store.Get(ctx, "tok")

	if ok {
		t.Fatal("deleted session still present")
	}
}

func TestRedisStoreSkipsAlreadyExpiredSessions(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	sess := Session{UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}

	if err := store.Save(ctx, "tok", sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, ok, _ := store.Get(ctx, "tok")

	if ok {
		t.Fatal("expired session was persisted")
	}
}
