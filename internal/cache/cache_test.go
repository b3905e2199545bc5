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

func TestKey(t *testing.T) {
	first := Key("plan", "avalanche", "100")
	assert.Equal(t, first, Key("plan", "avalanche", "100"))
	assert.Regexp(t, `^plan:[0-9a-f]+$`, first)

	assert.NotEqual(t, first, Key("plan", "snowball", "100"))
	assert.NotEqual(t, Key("plan", "ab", "c"), Key("plan", "a", "bc"))
	assert.NotEqual(t, first, Key("compare", "avalanche", "100"))
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	value, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v")))

	now = now.Add(59 * time.Second)
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestRedisCache_Unreachable(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", "", time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "k", []byte("v")))
	assert.Error(t, c.Ping(ctx))
}

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	c := NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}), ttl)
	t.Cleanup(func() { _ = c.Close() })
	return c, server
}

func TestRedisCache_MissHitExpiry(t *testing.T) {
	ctx := context.Background()
	c, server := newTestRedisCache(t, time.Minute)

	value, ok, err := c.Get(ctx, "plan:abc")
	require.NoError(t, err, "a missing key is a miss, not an error")
	assert.False(t, ok)
	assert.Nil(t, value)

	require.NoError(t, c.Set(ctx, "plan:abc", []byte(`{"totalMonths":17}`)))
	value, ok, err = c.Get(ctx, "plan:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"totalMonths":17}`), value)
	assert.Equal(t, time.Minute, server.TTL("plan:abc"))

	server.FastForward(time.Minute)
	_, ok, err = c.Get(ctx, "plan:abc")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Ping(ctx))
}

func TestRedisCache_ZeroTTLKeepsKey(t *testing.T) {
	ctx := context.Background()
	c, server := newTestRedisCache(t, 0)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	assert.Equal(t, time.Duration(0), server.TTL("k"))

	server.FastForward(24 * time.Hour)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}
