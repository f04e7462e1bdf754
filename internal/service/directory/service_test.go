package directory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) *Service {
	t.Helper()
	return New(memory.NewSeeded(), nil, Config{})
}

func newWith(t *testing.T, flights ...domain.Flight) *Service {
	t.Helper()
	store, err := memory.New(flights)
	require.NoError(t, err)
	return New(store, nil, Config{})
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]domain.Flight, error) {
	return nil, errors.New("boom")
}

func (failingRepo) Get(context.Context, string) (*domain.Flight, error) {
	return nil, errors.New("boom")
}

func TestFindByReferenceAndName_EverySeedFlight(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	for _, want := range memory.SeedFlights() {
		parts := strings.Fields(want.PassengerName)
		last := parts[len(parts)-1]

		got, ok, err := svc.FindByReferenceAndName(ctx, strings.ToLower(want.BookingReference), strings.ToUpper(last))
		require.NoError(t, err)
		require.True(t, ok, want.ID)

		// first flight in collection order with the same predicate values
		assert.Equal(t, want.BookingReference, got.BookingReference)
		assert.Contains(t, strings.ToLower(got.PassengerName), strings.ToLower(last))
	}
}

func TestFindByReferenceAndName_Scenario(t *testing.T) {
	svc := newWith(t,
		domain.Flight{ID: "x", BookingReference: "ZZZ999", PassengerName: "Ann Lee"},
		domain.Flight{ID: "target", BookingReference: "ABC123", PassengerName: "John Doe"},
	)

	got, ok, err := svc.FindByReferenceAndName(context.Background(), "abc123", "doe")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "target", got.ID)
}

func TestFindByReferenceAndName_FirstMatchWins(t *testing.T) {
	svc := newWith(t,
		domain.Flight{ID: "a", BookingReference: "DUP001", PassengerName: "Sam Doe"},
		domain.Flight{ID: "b", BookingReference: "DUP001", PassengerName: "Kim Doe"},
	)

	got, ok, err := svc.FindByReferenceAndName(context.Background(), "dup001", "doe")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)

	got, ok, err = svc.FindByReferenceAndName(context.Background(), "DUP001", "kim")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)
}

func TestFindByReferenceAndName_NotFound(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		ref      string
		lastName string
	}{
		{"unknown reference", "NOPE00", "doe"},
		{"name mismatch", "ABC123", "smith"},
		{"reference is not a prefix match", "ABC12", "doe"},
		{"blank reference", "  ", "doe"},
		{"blank name", "ABC123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := svc.FindByReferenceAndName(ctx, tt.ref, tt.lastName)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFindByFlightNumber(t *testing.T) {
	svc := newSeeded(t)
	ctx := context.Background()

	got, ok, err := svc.FindByFlightNumber(ctx, "ua5678")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", got.ID)

	for _, miss := range []string{"UA567", "UA56789", "", "XX0000"} {
		_, ok, err := svc.FindByFlightNumber(ctx, miss)
		require.NoError(t, err)
		assert.False(t, ok, miss)
	}
}

func TestFindByID(t *testing.T) {
	svc := newSeeded(t)

	got, ok, err := svc.FindByID(context.Background(), "4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "BA0178", got.FlightNumber)

	_, ok, err = svc.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPartitionIsTotalAndStable(t *testing.T) {
	svc := newSeeded(t)
	at := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	trips, err := svc.PartitionByTemporalBucket(context.Background(), at)
	require.NoError(t, err)

	seed := memory.SeedFlights()
	require.Equal(t, len(seed), len(trips.Upcoming)+len(trips.Past))

	seen := map[string]int{}
	for _, f := range trips.Upcoming {
		seen[f.ID]++
		assert.False(t, f.DepartureDate.Before(domain.DateOf(at)))
	}
	for _, f := range trips.Past {
		seen[f.ID]++
		assert.True(t, f.DepartureDate.Before(domain.DateOf(at)))
	}
	for _, f := range seed {
		assert.Equal(t, 1, seen[f.ID], f.ID)
	}

	assert.Equal(t, []string{"1", "2", "3", "6"}, ids(trips.Upcoming))
	assert.Equal(t, []string{"4", "5"}, ids(trips.Past))
}

func TestPartitionBoundary(t *testing.T) {
	today := domain.MustDate("2024-05-10")
	flights := []domain.Flight{
		{ID: "yesterday", DepartureDate: domain.MustDate("2024-05-09")},
		{ID: "today", DepartureDate: today},
		{ID: "tomorrow", DepartureDate: domain.MustDate("2024-05-11")},
	}

	trips := Partition(flights, today)
	assert.Equal(t, []string{"today", "tomorrow"}, ids(trips.Upcoming))
	assert.Equal(t, []string{"yesterday"}, ids(trips.Past))
}

func TestPartitionTodayLateEvening(t *testing.T) {
	svc := newWith(t, domain.Flight{ID: "a", DepartureDate: domain.MustDate("2024-05-10")})

	// Same calendar day, after the departure date's midnight.
	trips, err := svc.PartitionByTemporalBucket(context.Background(), time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(trips.Upcoming))
	assert.Empty(t, trips.Past)
}

func TestPartitionUsesConfiguredLocation(t *testing.T) {
	store, err := memory.New([]domain.Flight{{ID: "a", DepartureDate: domain.MustDate("2024-05-10")}})
	require.NoError(t, err)

	tokyo := time.FixedZone("JST", 9*60*60)
	svc := New(store, nil, Config{Location: tokyo})

	// 20:00 UTC on the 10th is already the 11th in Tokyo.
	trips, err := svc.PartitionByTemporalBucket(context.Background(), time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(trips.Past))
}

func TestLive(t *testing.T) {
	svc := newSeeded(t)

	live, err := svc.Live(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(live))
}

func TestStatusDisplayFallback(t *testing.T) {
	svc := newSeeded(t)

	for _, s := range []domain.FlightStatus{
		domain.StatusScheduled, domain.StatusBoarding, domain.StatusDeparted,
		domain.StatusArrived, domain.StatusDelayed, domain.StatusCancelled,
	} {
		assert.NotEmpty(t, svc.StatusDisplay(s).Label, s)
	}

	d := svc.StatusDisplay("unknown")
	assert.Equal(t, 25, d.ProgressPercent)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	svc := New(failingRepo{}, nil, Config{})
	ctx := context.Background()

	_, _, err := svc.FindByReferenceAndName(ctx, "ABC123", "doe")
	assert.Error(t, err)

	_, _, err = svc.FindByFlightNumber(ctx, "AA1234")
	assert.Error(t, err)

	_, _, err = svc.FindByID(ctx, "1")
	assert.Error(t, err)

	_, err = svc.PartitionByTemporalBucket(ctx, time.Now())
	assert.Error(t, err)

	_, err = svc.Live(ctx)
	assert.Error(t, err)
}

func ids(flights []domain.Flight) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ID)
	}
	return out
}
