package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared across instances. Expiry is delegated to the key TTL.
type RedisStore struct {
	rdb *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(cfg RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func key(token string) string {
	return "session:" + token
}

func (s *RedisStore) Save(ctx context.Context, token string, sess Session) error {
	payload, err := json.Marshal(sess)

	if err != nil {
		return err
	}

	ttl := time.Until(sess.ExpiresAt)

	if ttl <= 0 {
		return nil
	}

	return s.rdb.Set(ctx, key(token), payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (Session, bool, error) {
	payload, err := s.rdb.Get(ctx, key(token)).Bytes()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, false, nil
		}

		return Session{}, false, err
	}

	var sess Session

	err = json.Unmarshal(payload, &sess)

	if err != nil {
		return Session{}, false, err
	}

	return sess, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, key(token)).Err()
}
