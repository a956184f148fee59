// Package session gives wizard steps typed access to the per-browser state
// kept in an application.SessionStore.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
)

// Session is the store bound to one browser session.
type Session struct {
	store application.SessionStore
	id    string
}

func New(store application.SessionStore, id string) *Session {
	return &Session{store: store, id: id}
}

func (s *Session) ID() string {
	return s.id
}

// Named is satisfied by every Key regardless of its value type.
type Named interface {
	Name() string
}

// Key names one piece of wizard state holding a T.
type Key[T any] struct {
	name string
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) Name() string {
	return k.name
}

var jsonNull = []byte("null")

// Get reads key. found is false when the key is unset or holds JSON null.
func Get[T any](ctx context.Context, s *Session, key Key[T]) (T, bool, error) {
	var value T

	raw, found, err := s.store.Get(ctx, s.id, key.name)
	if err != nil {
		return value, false, fmt.Errorf("read session key %q: %w", key.name, err)
	}
	if !found || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("decode session key %q: %w", key.name, err)
	}
	return value, true, nil
}

// GetOrZero is Get for callers that treat a missing key as the zero value.
func GetOrZero[T any](ctx context.Context, s *Session, key Key[T]) (T, error) {
	value, _, err := Get(ctx, s, key)
	return value, err
}

func Set[T any](ctx context.Context, s *Session, key Key[T], value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session key %q: %w", key.name, err)
	}
	if err := s.store.Set(ctx, s.id, key.name, raw); err != nil {
		return fmt.Errorf("write session key %q: %w", key.name, err)
	}
	return nil
}

// Clear removes the given keys. It is a no-op without keys.
func (s *Session) Clear(ctx context.Context, keys ...Named) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Name()
	}
	if err := s.store.Clear(ctx, s.id, names...); err != nil {
		return fmt.Errorf("clear session keys: %w", err)
	}
	return nil
}
