package redis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type SessionStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	store     *SessionStore
	ctx       context.Context
}

func TestSessionStoreTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration tests in short mode")
	}
	suite.Run(t, new(SessionStoreTestSuite))
}

func (s *SessionStoreTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "6379")
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := Connect(s.ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), logger)
	s.Require().NoError(err)

	s.store = NewSessionStore(client, 2*time.Second)
}

func (s *SessionStoreTestSuite) TearDownSuite() {
	if s.store != nil {
		_ = s.store.client.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *SessionStoreTestSuite) SetupTest() {
	s.Require().NoError(s.store.client.FlushDB(s.ctx).Err())
}

func (s *SessionStoreTestSuite) TestSetGet() {
	t := s.T()

	require.NoError(t, s.store.Set(s.ctx, "sid", "suppliersFound", []byte(`[{"supplierId":"1"}]`)))

	value, found, err := s.store.Get(s.ctx, "sid", "suppliersFound")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"supplierId":"1"}]`, string(value))

	_, found, err = s.store.Get(s.ctx, "sid", "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func (s *SessionStoreTestSuite) TestClear() {
	t := s.T()
	require.NoError(t, s.store.Set(s.ctx, "sid", "a", []byte(`1`)))
	require.NoError(t, s.store.Set(s.ctx, "sid", "b", []byte(`2`)))

	require.NoError(t, s.store.Clear(s.ctx, "sid", "a"))
	_, foundA, err := s.store.Get(s.ctx, "sid", "a")
	require.NoError(t, err)
	_, foundB, err := s.store.Get(s.ctx, "sid", "b")
	require.NoError(t, err)
	assert.False(t, foundA)
	assert.True(t, foundB)

	require.NoError(t, s.store.Clear(s.ctx, "sid"))
	_, foundB, err = s.store.Get(s.ctx, "sid", "b")
	require.NoError(t, err)
	assert.False(t, foundB)
}

func (s *SessionStoreTestSuite) TestWriteSetsTTL() {
	t := s.T()
	require.NoError(t, s.store.Set(s.ctx, "sid", "a", []byte(`1`)))

	ttl, err := s.store.client.TTL(s.ctx, sessionKey("sid")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 2*time.Second)

	assert.Eventually(t, func() bool {
		_, found, err := s.store.Get(s.ctx, "sid", "a")
		return err == nil && !found
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *SessionStoreTestSuite) TestTouchSlidesTTL() {
	t := s.T()
	require.NoError(t, s.store.Set(s.ctx, "sid", "a", []byte(`1`)))

	time.Sleep(1500 * time.Millisecond)
	require.NoError(t, s.store.Touch(s.ctx, "sid"))
	time.Sleep(1000 * time.Millisecond)

	_, found, err := s.store.Get(s.ctx, "sid", "a")
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, s.store.Touch(s.ctx, "never-seen"))
	exists, err := s.store.client.Exists(s.ctx, sessionKey("never-seen")).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
