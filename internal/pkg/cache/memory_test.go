package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryStore_TTLBoundary(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := base
	store := NewMemoryStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	now = base.Add(time.Minute - time.Nanosecond)
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok, "entry should still be live just before the TTL elapses")

	now = base.Add(time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry should be gone once the TTL elapses")
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := base
	store := NewMemoryStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	now = base.Add(1000 * time.Hour)
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, store.Delete(ctx, "a", "does-not-exist"))

	_, ok, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_DeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "att:NAS101:a", []byte("1"), 0))
	require.NoError(t, store.Set(ctx, "att:NAS101:b", []byte("2"), 0))
	require.NoError(t, store.Set(ctx, "att:NAS102:a", []byte("3"), 0))

	require.NoError(t, store.DeleteByPrefix(ctx, "att:NAS101:"))

	for _, key := range []string{"att:NAS101:a", "att:NAS101:b"} {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	_, ok, err := store.Get(ctx, "att:NAS102:a")
	require.NoError(t, err)
	assert.True(t, ok, "other subjects must survive a prefix delete")
}

func TestMemoryStore_CountByPrefixSkipsExpired(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := base
	store := NewMemoryStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "emp:NAS101", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "emp:NAS102", []byte("2"), time.Hour))
	require.NoError(t, store.Set(ctx, "token:NAS101", []byte("3"), time.Hour))

	count, err := store.CountByPrefix(ctx, "emp:")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	now = base.Add(10 * time.Minute)
	count, err = store.CountByPrefix(ctx, "emp:")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "expired entries must not be counted")
}
