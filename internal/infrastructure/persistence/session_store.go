// Package persistence picks the session backend named in configuration.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/config"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/memory"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/postgres"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/redis"
)

// SessionBackend is an opened session store plus whatever must be released at
// shutdown. Remover is nil for backends that expire entries themselves.
type SessionBackend struct {
	Store   application.SessionStore
	Remover application.ExpiredSessionRemover
	close   func()
}

func (b *SessionBackend) Close() {
	if b.close != nil {
		b.close()
	}
}

func OpenSessionBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*SessionBackend, error) {
	logger.Info("opening session backend", "backend", cfg.Session.Backend, "ttl", cfg.Session.TTL)

	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		store := memory.NewSessionStore(cfg.Session.TTL)
		return &SessionBackend{Store: store, Remover: store}, nil

	case config.SessionBackendRedis:
		client, err := redis.Connect(ctx, cfg.Redis.URL, logger)
		if err != nil {
			return nil, err
		}
		return &SessionBackend{
			Store: redis.NewSessionStore(client, cfg.Session.TTL),
			close: func() { _ = client.Close() },
		}, nil

	case config.SessionBackendPostgres:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		store := postgres.NewSessionStore(db, cfg.Session.TTL)
		return &SessionBackend{Store: store, Remover: store, close: db.Close}, nil
	}

	return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
}
