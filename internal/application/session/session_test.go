package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

type countingStore struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
	getErr error
}

func newCountingStore() *countingStore {
	return &countingStore{values: make(map[string][]byte)}
}

func (c *countingStore) Get(_ context.Context, sessionID, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.values[sessionID+"/"+key]
	return v, ok, nil
}

func (c *countingStore) Set(_ context.Context, sessionID, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	c.values[sessionID+"/"+key] = value
	return nil
}

func (c *countingStore) Clear(_ context.Context, sessionID string, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(keys) == 0 {
		for k := range c.values {
			if len(k) > len(sessionID) && k[:len(sessionID)+1] == sessionID+"/" {
				delete(c.values, k)
			}
		}
		return nil
	}
	for _, k := range keys {
		delete(c.values, sessionID+"/"+k)
	}
	return nil
}

func (c *countingStore) Touch(context.Context, string) error { return nil }

func TestGetFromSessionOrAPI_FetchesOnceThenServesCache(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	sess := New(store, "sid-1")
	key := NewKey[[]domain.Supplier]("suppliers")

	calls := 0
	fetch := func(context.Context) ([]domain.Supplier, error) {
		calls++
		return []domain.Supplier{{ID: "sup-1", Name: "Supplier One"}}, nil
	}

	first, err := GetFromSessionOrAPI(ctx, sess, key, fetch)
	require.NoError(t, err)
	second, err := GetFromSessionOrAPI(ctx, sess, key, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, first, second)
}

func TestGetFromSessionOrAPI_HitDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	sess := New(store, "sid-1")
	key := NewKey[string]("name")
	require.NoError(t, Set(ctx, sess, key, "cached"))
	store.writes = 0

	value, err := GetFromSessionOrAPI(ctx, sess, key, func(context.Context) (string, error) {
		t.Fatal("fetch must not be called on a hit")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "cached", value)
	assert.Zero(t, store.writes)
}

func TestGetFromSessionOrAPI_FailedFetchWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	sess := New(store, "sid-1")
	key := NewKey[[]domain.Price]("prices")
	boom := errors.New("upstream down")

	_, err := GetFromSessionOrAPI(ctx, sess, key, func(context.Context) ([]domain.Price, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.writes)
	_, found, err := Get(ctx, sess, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetFromSessionOrAPI_EmptyCollectionIsAHit(t *testing.T) {
	ctx := context.Background()
	sess := New(newCountingStore(), "sid-1")
	key := NewKey[[]domain.Supplier]("suppliers")

	calls := 0
	fetch := func(context.Context) ([]domain.Supplier, error) {
		calls++
		return []domain.Supplier{}, nil
	}

	_, err := GetFromSessionOrAPI(ctx, sess, key, fetch)
	require.NoError(t, err)
	value, err := GetFromSessionOrAPI(ctx, sess, key, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.NotNil(t, value)
	assert.Empty(t, value)
}

func TestGetFromSessionOrAPI_NullIsAMiss(t *testing.T) {
	ctx := context.Background()
	sess := New(newCountingStore(), "sid-1")
	key := NewKey[[]domain.Supplier]("suppliers")

	calls := 0
	fetch := func(context.Context) ([]domain.Supplier, error) {
		calls++
		return nil, nil
	}

	_, err := GetFromSessionOrAPI(ctx, sess, key, fetch)
	require.NoError(t, err)
	_, err = GetFromSessionOrAPI(ctx, sess, key, fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestGetFromSessionOrAPI_StoreErrorPropagates(t *testing.T) {
	store := newCountingStore()
	store.getErr = errors.New("redis unavailable")
	sess := New(store, "sid-1")

	_, err := GetFromSessionOrAPI(context.Background(), sess, NewKey[string]("k"), func(context.Context) (string, error) {
		t.Fatal("fetch must not be called when the store fails")
		return "", nil
	})

	assert.ErrorIs(t, err, store.getErr)
}

func TestFindSelectedItem(t *testing.T) {
	ctx := context.Background()
	sess := New(newCountingStore(), "sid-1")
	key := NewKey[[]domain.ServiceRecipient]("recipients")
	recipients := []domain.ServiceRecipient{
		{Name: "Practice A", OdsCode: "A001"},
		{Name: "Practice B", OdsCode: "B002"},
		{Name: "Practice B duplicate", OdsCode: "B002"},
	}
	require.NoError(t, Set(ctx, sess, key, recipients))

	tests := []struct {
		name       string
		selectedID string
		want       domain.ServiceRecipient
		wantErr    bool
	}{
		{name: "exactMatch", selectedID: "A001", want: recipients[0]},
		{name: "firstOfDuplicates", selectedID: "B002", want: recipients[1]},
		{name: "noMatch", selectedID: "Z999", wantErr: true},
		{name: "caseSensitive", selectedID: "a001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindSelectedItem(ctx, sess, key, tt.selectedID)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrNotFound)
				assert.True(t, domain.IsErrorCode(err, domain.ErrCodeSelectedItemNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindSelectedItem_MissingListIsNotFound(t *testing.T) {
	sess := New(newCountingStore(), "sid-1")

	_, err := FindSelectedItem(context.Background(), sess, NewKey[[]domain.Price]("prices"), "1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSession_ClearOnlyNamedKeys(t *testing.T) {
	ctx := context.Background()
	sess := New(newCountingStore(), "sid-1")
	a := NewKey[string]("a")
	b := NewKey[int]("b")
	require.NoError(t, Set(ctx, sess, a, "x"))
	require.NoError(t, Set(ctx, sess, b, 7))

	require.NoError(t, sess.Clear(ctx, a))

	_, foundA, err := Get(ctx, sess, a)
	require.NoError(t, err)
	bValue, foundB, err := Get(ctx, sess, b)
	require.NoError(t, err)
	assert.False(t, foundA)
	assert.True(t, foundB)
	assert.Equal(t, 7, bValue)
}

func TestWizardKeys_AreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range WizardKeys() {
		assert.False(t, seen[k.Name()], "duplicate key %s", k.Name())
		seen[k.Name()] = true
	}
	assert.NotContains(t, seen, OrgIDsByOdsCode.Name())
}
