package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAllowsBurstThenRejects(t *testing.T) {
	l := NewLocal(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, _, err := l.Allow(ctx, "ip:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i)
	}

	ok, retry, err := l.Allow(ctx, "ip:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, 20*time.Second)
}

func TestLocalKeysAreIndependent(t *testing.T) {
	l := NewLocal(1, time.Minute)
	ctx := context.Background()

	ok, _, _ := l.Allow(ctx, "a")
	assert.True(t, ok)

	ok, _, _ = l.Allow(ctx, "a")
	assert.False(t, ok)

	ok, _, _ = l.Allow(ctx, "b")
	assert.True(t, ok)
}
