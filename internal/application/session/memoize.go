package session

import (
	"context"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// GetFromSessionOrAPI returns the cached value for key, or calls fetch once and
// caches what it returns. A failed fetch writes nothing. Concurrent misses may
// both fetch; the last write wins.
func GetFromSessionOrAPI[T any](ctx context.Context, s *Session, key Key[T], fetch func(context.Context) (T, error)) (T, error) {
	cached, found, err := Get(ctx, s, key)
	if err != nil {
		return cached, err
	}
	if found {
		return cached, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := Set(ctx, s, key, value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// FindSelectedItem scans the list stored under key for the item whose id is
// selectedID. A missing list or no match is an integrity failure.
func FindSelectedItem[T domain.Identifiable](ctx context.Context, s *Session, key Key[[]T], selectedID string) (T, error) {
	var zero T

	items, _, err := Get(ctx, s, key)
	if err != nil {
		return zero, err
	}

	for _, item := range items {
		if item.ItemID() == selectedID {
			return item, nil
		}
	}
	return zero, domain.NewSelectedItemNotFoundError(key.Name(), selectedID)
}
