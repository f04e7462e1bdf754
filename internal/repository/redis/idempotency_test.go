package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStoreLifecycle(t *testing.T) {
	mr, rdb := newTestRedis(t)
	s := NewIdempotencyStore(rdb, time.Hour)
	ctx := context.Background()
	key := KeyIdemCheckIn("abc123", "k1")

	payload, done, acquired, err := s.Begin(ctx, key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.False(t, done)
	assert.Empty(t, payload)

	v, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "LOCK", v)

	// A second request while the first runs neither owns nor replays.
	_, done, acquired, err = s.Begin(ctx, key, 30*time.Second)
	require.NoError(t, err)
	assert.False(t, acquired)
	assert.False(t, done)

	require.NoError(t, s.Save(ctx, key, `{"created":true}`))
	assert.Equal(t, time.Hour, mr.TTL(key))

	payload, done, acquired, err = s.Begin(ctx, key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, done)
	assert.False(t, acquired)
	assert.Equal(t, `{"created":true}`, payload)
}

func TestIdempotencyStoreRelease(t *testing.T) {
	_, rdb := newTestRedis(t)
	s := NewIdempotencyStore(rdb, time.Hour)
	ctx := context.Background()
	key := KeyIdemCheckIn("ABC123", "k2")

	_, _, acquired, err := s.Begin(ctx, key, 30*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, s.Release(ctx, key))

	_, done, acquired, err := s.Begin(ctx, key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "a released key can be claimed again")
	assert.False(t, done)
}

func TestIdempotencyStoreLockExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	s := NewIdempotencyStore(rdb, time.Hour)
	ctx := context.Background()
	key := KeyIdemCheckIn("ABC123", "k3")

	_, _, acquired, err := s.Begin(ctx, key, 10*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	mr.FastForward(11 * time.Second)

	_, _, acquired, err = s.Begin(ctx, key, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "an abandoned lock does not block forever")
}
