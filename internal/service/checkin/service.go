package checkin

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/patrickmn/go-cache"
)

// DefaultSeat is proposed when the booking has no seat assigned.
const DefaultSeat = "12A"

var seatOptions = []string{"12A", "12B", "12C", "13A", "13B", "13C", "14A", "14B", "14C"}

// Finder locates the booking being checked in.
type Finder interface {
	FindByReferenceAndName(ctx context.Context, ref, lastName string) (domain.Flight, bool, error)
}

// Publisher announces completed check-ins.
type Publisher interface {
	PublishCheckIn(ctx context.Context, ci domain.CheckIn) error
}

type Config struct {
	// SessionTTL bounds how long a check-in is remembered.
	SessionTTL time.Duration
}

// Session is what a passenger sees after finding their booking.
type Session struct {
	Flight       domain.Flight        `json:"flight"`
	Display      domain.StatusDisplay `json:"display"`
	ProposedSeat string               `json:"proposedSeat"`
	SeatOptions  []string             `json:"seatOptions"`
	CheckIn      *domain.CheckIn      `json:"checkIn,omitempty"`
}

// Service records check-ins in process memory only. A check-in never
// changes the flight itself.
type Service struct {
	finder    Finder
	publisher Publisher
	checkIns  *cache.Cache
	mu        sync.Mutex
	cfg       Config
	now       func() time.Time
}

// New builds the check-in service. publisher may be nil.
func New(finder Finder, publisher Publisher, cfg Config) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	return &Service{
		finder:    finder,
		publisher: publisher,
		checkIns:  cache.New(cfg.SessionTTL, 10*time.Minute),
		cfg:       cfg,
		now:       time.Now,
	}
}

// SeatOptions returns the seats a passenger may pick from.
func SeatOptions() []string {
	return slices.Clone(seatOptions)
}

// Start looks up the booking and proposes a seat.
//
// Returns:
//   - Session: the flight, proposed seat and any existing check-in.
//   - error: checkin.ErrFlightNotFound if no booking matches.
func (s *Service) Start(ctx context.Context, ref, lastName string) (Session, error) {
	const op = "service.checkin.Start"

	f, err := s.find(ctx, ref, lastName)
	if err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}

	sess := Session{
		Flight:       f,
		Display:      domain.DisplayFor(f.Status),
		ProposedSeat: proposedSeat(f),
		SeatOptions:  SeatOptions(),
	}

	if ci, ok := s.Get(f.ID); ok {
		sess.CheckIn = &ci
	}

	return sess, nil
}

// Complete checks the passenger in on seat. An empty seat means the proposed
// one. Checking in twice returns the first check-in with created == false.
//
// Returns:
//   - domain.CheckIn: the check-in record.
//   - bool: whether this call created it.
//   - error: checkin.ErrFlightNotFound, checkin.ErrCheckInClosed or
//     checkin.InvalidSeatError.
func (s *Service) Complete(ctx context.Context, ref, lastName, seat string) (domain.CheckIn, bool, error) {
	const op = "service.checkin.Complete"

	f, err := s.find(ctx, ref, lastName)
	if err != nil {
		return domain.CheckIn{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if !f.Status.Active() {
		return domain.CheckIn{}, false, fmt.Errorf("%s: %w", op, ErrCheckInClosed)
	}

	seat = strings.ToUpper(strings.TrimSpace(seat))
	if seat == "" {
		seat = proposedSeat(f)
	}
	if !slices.Contains(seatOptions, seat) && !strings.EqualFold(seat, f.Seat) {
		return domain.CheckIn{}, false, fmt.Errorf("%s: %w", op, InvalidSeatError{Seat: seat})
	}

	s.mu.Lock()
	if existing, ok := s.Get(f.ID); ok {
		s.mu.Unlock()
		return existing, false, nil
	}

	ci := domain.CheckIn{
		ID:               uuid.New(),
		FlightID:         f.ID,
		BookingReference: f.BookingReference,
		Seat:             seat,
		CheckedInAt:      s.now().UTC(),
	}
	s.checkIns.SetDefault(f.ID, ci)
	s.mu.Unlock()

	// The check-in stands even if the event is lost; the publisher reports it.
	if s.publisher != nil {
		_ = s.publisher.PublishCheckIn(ctx, ci)
	}

	return ci, true, nil
}

// Get returns the check-in for flightID, if one is remembered.
func (s *Service) Get(flightID string) (domain.CheckIn, bool) {
	v, ok := s.checkIns.Get(flightID)
	if !ok {
		return domain.CheckIn{}, false
	}
	return v.(domain.CheckIn), true
}

func (s *Service) find(ctx context.Context, ref, lastName string) (domain.Flight, error) {
	f, ok, err := s.finder.FindByReferenceAndName(ctx, ref, lastName)
	if err != nil {
		return domain.Flight{}, err
	}
	if !ok {
		return domain.Flight{}, ErrFlightNotFound
	}
	return f, nil
}

func proposedSeat(f domain.Flight) string {
	if f.Seat != "" {
		return f.Seat
	}
	return DefaultSeat
}
