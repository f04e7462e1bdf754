package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInPubSub(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ps := NewCheckInPubSub(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan domain.CheckIn, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- ps.Subscribe(ctx, func(_ context.Context, ci domain.CheckIn) {
			got <- ci
		})
	}()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(ChannelCheckIns())[ChannelCheckIns()] == 1
	}, time.Second, 5*time.Millisecond)

	// Malformed messages are skipped.
	require.NoError(t, rdb.Publish(ctx, ChannelCheckIns(), "not json").Err())

	want := domain.CheckIn{
		ID:               uuid.New(),
		FlightID:         "2",
		BookingReference: "DEF456",
		Seat:             "13C",
		CheckedInAt:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, ps.PublishCheckIn(ctx, want))

	select {
	case ci := <-got:
		assert.Equal(t, want.ID, ci.ID)
		assert.Equal(t, "2", ci.FlightID)
		assert.Equal(t, "13C", ci.Seat)
		assert.True(t, want.CheckedInAt.Equal(ci.CheckedInAt))
	case <-time.After(2 * time.Second):
		t.Fatal("check-in event not delivered")
	}

	assert.Empty(t, got)

	cancel()
	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}

func TestPublishCheckInRedisDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ps := NewCheckInPubSub(rdb)
	mr.Close()

	err := ps.PublishCheckIn(context.Background(), domain.CheckIn{FlightID: "1"})
	assert.Error(t, err)
}
