package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStoreFromClient(client), server
}

func TestRedisStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, server := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	server.FastForward(time.Minute + time.Second)

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_DeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "att:NAS101:a", []byte("1"), 0))
	require.NoError(t, store.Set(ctx, "att:NAS101:b", []byte("2"), 0))
	require.NoError(t, store.Set(ctx, "att:NAS102:a", []byte("3"), 0))

	require.NoError(t, store.DeleteByPrefix(ctx, "att:NAS101:"))

	count, err := store.CountByPrefix(ctx, "att:NAS101:")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = store.CountByPrefix(ctx, "att:")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisStore_DeleteMissingKeys(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	assert.NoError(t, store.Delete(ctx))
	assert.NoError(t, store.Delete(ctx, "never-set"))
}
