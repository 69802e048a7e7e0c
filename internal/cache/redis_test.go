package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisBlobStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisBlobStore(context.Background(), RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestRedisBlobStore_RoundTrip(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "audio:7")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "audio:7", []byte{0x49, 0x44, 0x33}, time.Hour))

	data, found, err := store.Get(ctx, "audio:7")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{0x49, 0x44, 0x33}, data)

	assert.True(t, mr.Exists("radioai:audio:7"), "expected key to be namespaced")
	assert.Equal(t, time.Hour, mr.TTL("radioai:audio:7"))
}

func TestRedisBlobStore_Expiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "audio:1", []byte("mp3"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, found, err := store.Get(ctx, "audio:1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisBlobStore_Delete(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "audio:2", []byte("mp3"), time.Hour))
	require.NoError(t, store.Delete(ctx, "audio:2"))

	_, found, err := store.Get(ctx, "audio:2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewRedisBlobStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisBlobStore(context.Background(), RedisOptions{Addr: addr})
	assert.Error(t, err)
}
