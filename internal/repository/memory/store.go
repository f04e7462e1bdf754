package memory

import (
	"context"
	"fmt"

	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/repository"
)

// Store is an immutable, in-process flight source. The record order given
// to New is the collection order seen by callers.
type Store struct {
	flights []domain.Flight
	byID    map[string]int
}

// New builds a store from flights.
//
// Returns:
//   - *Store: the store on success.
//   - error: repository.ErrConflict if two flights share an ID.
func New(flights []domain.Flight) (*Store, error) {
	const op = "memory.New"

	s := &Store{
		flights: make([]domain.Flight, len(flights)),
		byID:    make(map[string]int, len(flights)),
	}
	copy(s.flights, flights)

	for i, f := range s.flights {
		if _, dup := s.byID[f.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate flight id %q: %w", op, f.ID, repository.ErrConflict)
		}
		s.byID[f.ID] = i
	}

	return s, nil
}

// NewSeeded returns a store holding the built-in reference flights.
func NewSeeded() *Store {
	s, err := New(SeedFlights())
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) List(ctx context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Flight, error) {
	const op = "memory.Store.Get"

	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	f := s.flights[i]
	return &f, nil
}
