package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/repository"
	redisrepo "github.com/kirinyoku/flightdesk/internal/repository/redis"
)

// Repository is a read-only flight source. List returns flights in
// collection order, which decides the winner when several flights match.
type Repository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Get(ctx context.Context, id string) (*domain.Flight, error)
}

type Config struct {
	// Location decides which calendar day "now" falls on.
	Location *time.Location
	CacheTTL time.Duration
}

type Service struct {
	repo  Repository
	cache *redisrepo.Cache
	cfg   Config
}

// New builds the flight directory. cache may be nil.
func New(repo Repository, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 60 * time.Second
	}

	return &Service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// FindByReferenceAndName returns the first flight whose booking reference
// equals ref and whose passenger name contains lastName, both compared
// case-insensitively. A miss is reported with found == false, not an error.
//
// Parameters:
//   - ctx: request-scoped context.
//   - ref: booking reference, e.g. "ABC123".
//   - lastName: any part of the passenger name.
//
// Returns:
//   - domain.Flight: the matching flight.
//   - bool: whether a flight matched.
//   - error: only when the flight source fails.
func (s *Service) FindByReferenceAndName(ctx context.Context, ref, lastName string) (domain.Flight, bool, error) {
	const op = "service.directory.FindByReferenceAndName"

	ref = strings.TrimSpace(ref)
	lastName = strings.ToLower(strings.TrimSpace(lastName))
	if ref == "" || lastName == "" {
		return domain.Flight{}, false, nil
	}

	flights, err := s.flights(ctx)
	if err != nil {
		return domain.Flight{}, false, fmt.Errorf("%s: %w", op, err)
	}

	for _, f := range flights {
		if strings.EqualFold(f.BookingReference, ref) &&
			strings.Contains(strings.ToLower(f.PassengerName), lastName) {
			return f, true, nil
		}
	}

	return domain.Flight{}, false, nil
}

// FindByFlightNumber returns the first flight whose number equals number,
// ignoring case.
func (s *Service) FindByFlightNumber(ctx context.Context, number string) (domain.Flight, bool, error) {
	const op = "service.directory.FindByFlightNumber"

	number = strings.TrimSpace(number)
	if number == "" {
		return domain.Flight{}, false, nil
	}

	flights, err := s.flights(ctx)
	if err != nil {
		return domain.Flight{}, false, fmt.Errorf("%s: %w", op, err)
	}

	for _, f := range flights {
		if strings.EqualFold(f.FlightNumber, number) {
			return f, true, nil
		}
	}

	return domain.Flight{}, false, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (domain.Flight, bool, error) {
	const op = "service.directory.FindByID"

	if s.cache != nil {
		flights, err := s.flights(ctx)
		if err != nil {
			return domain.Flight{}, false, fmt.Errorf("%s: %w", op, err)
		}
		for _, f := range flights {
			if f.ID == id {
				return f, true, nil
			}
		}
		return domain.Flight{}, false, nil
	}

	f, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Flight{}, false, nil
		}
		return domain.Flight{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return *f, true, nil
}

// PartitionByTemporalBucket splits all flights into upcoming (departure
// date on or after the calendar day of at) and past. Both buckets keep
// collection order and every flight lands in exactly one of them.
func (s *Service) PartitionByTemporalBucket(ctx context.Context, at time.Time) (domain.Trips, error) {
	const op = "service.directory.PartitionByTemporalBucket"

	flights, err := s.flights(ctx)
	if err != nil {
		return domain.Trips{}, fmt.Errorf("%s: %w", op, err)
	}

	return Partition(flights, domain.DateOf(at.In(s.cfg.Location))), nil
}

// Partition is the pure form of PartitionByTemporalBucket.
func Partition(flights []domain.Flight, today domain.Date) domain.Trips {
	trips := domain.Trips{
		Upcoming: []domain.Flight{},
		Past:     []domain.Flight{},
	}

	for _, f := range flights {
		if f.DepartureDate.Before(today) {
			trips.Past = append(trips.Past, f)
		} else {
			trips.Upcoming = append(trips.Upcoming, f)
		}
	}

	return trips
}

// Live returns flights that are still operating: scheduled, boarding or
// delayed.
func (s *Service) Live(ctx context.Context) ([]domain.Flight, error) {
	const op = "service.directory.Live"

	flights, err := s.flights(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := []domain.Flight{}
	for _, f := range flights {
		if f.Status.Active() {
			out = append(out, f)
		}
	}

	return out, nil
}

func (s *Service) StatusDisplay(status domain.FlightStatus) domain.StatusDisplay {
	return domain.DisplayFor(status)
}

func (s *Service) flights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}

	return redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyFlights(),
		s.cfg.CacheTTL,
		s.repo.List,
	)
}
