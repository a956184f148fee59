package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
)

var (
	_ application.SessionStore          = (*SessionStore)(nil)
	_ application.ExpiredSessionRemover = (*SessionStore)(nil)
)

// SessionStore keeps one row per (session, key). Every write or touch pushes
// the expiry of all the session's live rows forward.
type SessionStore struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

func NewSessionStore(db *DB, ttl time.Duration) *SessionStore {
	return &SessionStore{db: db, ttl: ttl, now: time.Now}
}

func (s *SessionStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM session_values
		WHERE session_id = $1 AND key = $2 AND expires_at > $3
	`

	var value []byte
	err := s.db.Pool.QueryRow(ctx, query, sessionID, key, s.now()).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get session value: %w", err)
	}
	return value, true, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	return s.db.WithTransaction(ctx, func(ctx context.Context, tx Executor) error {
		upsert := `
			INSERT INTO session_values (session_id, key, value, updated_at, expires_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (session_id, key)
			DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at, expires_at = EXCLUDED.expires_at
		`
		if _, err := tx.Exec(ctx, upsert, sessionID, key, string(value), now, expiresAt); err != nil {
			return fmt.Errorf("failed to set session value: %w", err)
		}

		touch := `UPDATE session_values SET expires_at = $2 WHERE session_id = $1 AND expires_at > $3`
		if _, err := tx.Exec(ctx, touch, sessionID, expiresAt, now); err != nil {
			return fmt.Errorf("failed to extend session: %w", err)
		}
		return nil
	})
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string, keys ...string) error {
	var err error
	if len(keys) == 0 {
		_, err = s.db.Pool.Exec(ctx, `DELETE FROM session_values WHERE session_id = $1`, sessionID)
	} else {
		_, err = s.db.Pool.Exec(ctx, `DELETE FROM session_values WHERE session_id = $1 AND key = ANY($2)`, sessionID, keys)
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) Touch(ctx context.Context, sessionID string) error {
	now := s.now()
	query := `UPDATE session_values SET expires_at = $2 WHERE session_id = $1 AND expires_at > $3`
	if _, err := s.db.Pool.Exec(ctx, query, sessionID, now.Add(s.ttl), now); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// DeleteExpired removes at most limit expired rows.
func (s *SessionStore) DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error) {
	query := `
		DELETE FROM session_values
		WHERE ctid IN (
			SELECT ctid FROM session_values
			WHERE expires_at <= $1
			LIMIT $2
		)
	`
	tag, err := s.db.Pool.Exec(ctx, query, before, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
