package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func Test_RedisStore_ReadWrite(t *testing.T) {
	// given
	store, _ := newTestRedisStore(t, 0)
	ctx := context.Background()

	// when
	err := store.WriteString(ctx, "cartItems:sess-1", `[{"quantity":2}]`)
	require.NoError(t, err)
	value, err := store.ReadString(ctx, "cartItems:sess-1")

	// then
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":2}]`, value)
}

func Test_RedisStore_MissingKey(t *testing.T) {
	// given
	store, _ := newTestRedisStore(t, 0)

	// when
	_, err := store.ReadString(context.Background(), "cartItems:unknown")

	// then
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func Test_RedisStore_Overwrite(t *testing.T) {
	// given
	store, _ := newTestRedisStore(t, 0)
	ctx := context.Background()
	require.NoError(t, store.WriteString(ctx, "favoriteProducts:sess-1", `["a"]`))

	// when: a later snapshot replaces the earlier one wholesale
	require.NoError(t, store.WriteString(ctx, "favoriteProducts:sess-1", `["a","b"]`))
	value, err := store.ReadString(ctx, "favoriteProducts:sess-1")

	// then
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, value)
}

func Test_RedisStore_TTLExpires(t *testing.T) {
	// given
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, store.WriteString(ctx, "cartItems:sess-1", "[]"))

	// when: the snapshot's TTL elapses
	mr.FastForward(2 * time.Minute)

	// then
	_, err := store.ReadString(ctx, "cartItems:sess-1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func Test_InMemoryStore(t *testing.T) {
	// given
	store := NewInMemoryStore()
	ctx := context.Background()

	// when / then
	_, err := store.ReadString(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.WriteString(ctx, "key", "value"))
	value, err := store.ReadString(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}
