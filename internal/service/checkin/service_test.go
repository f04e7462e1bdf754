package checkin

import (
	"context"
	"sync"
	"testing"

	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/repository/memory"
	"github.com/kirinyoku/flightdesk/internal/service/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu  sync.Mutex
	got []domain.CheckIn
}

func (p *recordingPublisher) PublishCheckIn(_ context.Context, ci domain.CheckIn) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, ci)
	return nil
}

func newService(t *testing.T) (*Service, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	dir := directory.New(memory.NewSeeded(), nil, directory.Config{})
	return New(dir, pub, Config{}), pub
}

func TestStart(t *testing.T) {
	svc, _ := newService(t)

	sess, err := svc.Start(context.Background(), "abc123", "Doe")
	require.NoError(t, err)
	assert.Equal(t, "1", sess.Flight.ID)
	assert.Equal(t, "12A", sess.ProposedSeat)
	assert.Len(t, sess.SeatOptions, 9)
	assert.Equal(t, 25, sess.Display.ProgressPercent)
	assert.Nil(t, sess.CheckIn)
}

func TestStartProposesDefaultSeatWhenUnassigned(t *testing.T) {
	svc, _ := newService(t)

	sess, err := svc.Start(context.Background(), "DEF456", "doe")
	require.NoError(t, err)
	assert.Empty(t, sess.Flight.Seat)
	assert.Equal(t, DefaultSeat, sess.ProposedSeat)
}

func TestStartNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Start(context.Background(), "ABC123", "smith")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestComplete(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	ci, created, err := svc.Complete(ctx, "GHI789", "smith", "13b")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "3", ci.FlightID)
	assert.Equal(t, "13B", ci.Seat)
	assert.Equal(t, "GHI789", ci.BookingReference)

	got, ok := svc.Get("3")
	require.True(t, ok)
	assert.Equal(t, ci, got)

	require.Len(t, pub.got, 1)
	assert.Equal(t, ci.ID, pub.got[0].ID)

	sess, err := svc.Start(ctx, "GHI789", "smith")
	require.NoError(t, err)
	require.NotNil(t, sess.CheckIn)
	assert.Equal(t, ci.ID, sess.CheckIn.ID)
	assert.Equal(t, domain.StatusDelayed, sess.Flight.Status)
}

func TestCompleteTwiceReturnsFirst(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	first, created, err := svc.Complete(ctx, "ABC123", "doe", "")
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, "12A", first.Seat)

	second, created, err := svc.Complete(ctx, "ABC123", "doe", "14C")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
	assert.Len(t, pub.got, 1)
}

func TestCompleteAcceptsAssignedSeatOutsideOptions(t *testing.T) {
	svc, _ := newService(t)

	ci, _, err := svc.Complete(context.Background(), "GHI789", "smith", "8C")
	require.NoError(t, err)
	assert.Equal(t, "8C", ci.Seat)
}

func TestCompleteErrors(t *testing.T) {
	svc, pub := newService(t)
	ctx := context.Background()

	_, _, err := svc.Complete(ctx, "NOPE00", "doe", "")
	assert.ErrorIs(t, err, ErrFlightNotFound)

	_, _, err = svc.Complete(ctx, "JKL012", "smith", "")
	assert.ErrorIs(t, err, ErrCheckInClosed)

	_, _, err = svc.Complete(ctx, "MNO345", "doe", "")
	assert.ErrorIs(t, err, ErrCheckInClosed)

	_, _, err = svc.Complete(ctx, "ABC123", "doe", "99Z")
	var seatErr InvalidSeatError
	require.ErrorAs(t, err, &seatErr)
	assert.Equal(t, "99Z", seatErr.Seat)

	assert.Empty(t, pub.got)
}

func TestCompleteWithoutPublisher(t *testing.T) {
	dir := directory.New(memory.NewSeeded(), nil, directory.Config{})
	svc := New(dir, nil, Config{})

	_, created, err := svc.Complete(context.Background(), "DEF456", "doe", "12C")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSeatOptionsIsACopy(t *testing.T) {
	opts := SeatOptions()
	opts[0] = "XX"
	assert.Equal(t, "12A", SeatOptions()[0])
}
