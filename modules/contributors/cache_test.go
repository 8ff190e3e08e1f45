package contributors_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/meshjs/dashboard/modules/contributors"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewCachedStoreValidation(t *testing.T) {
	t.Parallel()

	_, err := contributors.NewCachedStore(nil, &mockCache{}, time.Minute, quiet)
	assert.ErrorIs(t, err, contributors.ErrNoStore)

	_, err = contributors.NewCachedStore(&stubStore{}, &mockCache{}, 0, quiet)
	assert.ErrorIs(t, err, contributors.ErrInvalidTTL)
}

func TestCachedStore(t *testing.T) {
	t.Parallel()

	rows := []contributors.Contributor{{Login: "alice", Contributions: 3, Repositories: []string{"mesh"}}}
	encoded, err := json.Marshal(rows)
	require.NoError(t, err)

	t.Run("hit skips the store", func(t *testing.T) {
		t.Parallel()

		cache := &mockCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult(string(encoded), nil))
		store := &stubStore{}

		cs, err := contributors.NewCachedStore(store, cache, time.Minute, quiet)
		require.NoError(t, err)

		got, err := cs.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, got)
		assert.Zero(t, store.calls)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("miss fills the cache", func(t *testing.T) {
		t.Parallel()

		cache := &mockCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult("", redis.Nil))
		cache.On("Set", mock.Anything, mock.Anything, encoded, 2*time.Minute).Return(redis.NewStatusResult("OK", nil))
		store := &stubStore{list: rows}

		cs, err := contributors.NewCachedStore(store, cache, 2*time.Minute, quiet)
		require.NoError(t, err)

		got, err := cs.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, got)
		assert.Equal(t, 1, store.calls)
		cache.AssertExpectations(t)
	})

	t.Run("redis errors fall through", func(t *testing.T) {
		t.Parallel()

		cache := &mockCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult("", errors.New("dial tcp: refused")))
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusResult("", errors.New("dial tcp: refused")))
		store := &stubStore{list: rows}

		cs, err := contributors.NewCachedStore(store, cache, time.Minute, quiet)
		require.NoError(t, err)

		got, err := cs.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("corrupt entry is refetched", func(t *testing.T) {
		t.Parallel()

		cache := &mockCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult("{not json", nil))
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusResult("OK", nil))
		store := &stubStore{list: rows}

		cs, err := contributors.NewCachedStore(store, cache, time.Minute, quiet)
		require.NoError(t, err)

		got, err := cs.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, got)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("store errors are not cached", func(t *testing.T) {
		t.Parallel()

		cache := &mockCache{}
		cache.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult("", redis.Nil))
		store := &stubStore{err: contributors.ErrListFailed}

		cs, err := contributors.NewCachedStore(store, cache, time.Minute, quiet)
		require.NoError(t, err)

		_, err = cs.List(context.Background())
		assert.ErrorIs(t, err, contributors.ErrListFailed)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
