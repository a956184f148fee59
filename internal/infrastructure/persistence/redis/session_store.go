// Package redis keeps each browser session in one hash, session:{id}, with a
// key TTL that slides on every write and every touch.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
)

var _ application.SessionStore = (*SessionStore)(nil)

type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, redisURL string, logger *slog.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}

func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *SessionStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	value, err := s.client.HGet(ctx, sessionKey(sessionID), key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get session value: %w", err)
	}
	return value, true, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	hash := sessionKey(sessionID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, hash, key, value)
	pipe.Expire(ctx, hash, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set session value: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string, keys ...string) error {
	var err error
	if len(keys) == 0 {
		err = s.client.Del(ctx, sessionKey(sessionID)).Err()
	} else {
		err = s.client.HDel(ctx, sessionKey(sessionID), keys...).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Touch resets the hash TTL. EXPIRE on a missing key is a no-op.
func (s *SessionStore) Touch(ctx context.Context, sessionID string) error {
	if err := s.client.Expire(ctx, sessionKey(sessionID), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}
