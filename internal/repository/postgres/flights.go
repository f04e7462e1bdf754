package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/flightdesk/internal/domain"
)

const flightColumns = `id, user_id, flight_number, airline,
	departure_airport, arrival_airport,
	departure_date, departure_time, arrival_date, arrival_time,
	gate, terminal, seat, status,
	booking_reference, passenger_name, created_at`

// position is NOT NULL UNIQUE with no default, so the order is total and
// never falls back to comparing text ids.
const listFlightsSQL = `SELECT ` + flightColumns + `
	FROM flights
	ORDER BY position`

// FlightRepo reads the flights table. It never writes.
type FlightRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *FlightRepo) With(db DB) *FlightRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *FlightRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns every flight in collection order (the position column).
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//
// Returns:
//   - []domain.Flight: all flights, possibly empty.
//   - error: a wrapped driver error.
func (r *FlightRepo) List(ctx context.Context) ([]domain.Flight, error) {
	const op = "postgres.FlightRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx, listFlightsSQL)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Flight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Get retrieves a flight by its ID.
//
// Returns:
//   - *domain.Flight: the flight when found.
//   - error: repository.ErrNotFound if the flight is not found.
func (r *FlightRepo) Get(ctx context.Context, id string) (*domain.Flight, error) {
	const op = "postgres.FlightRepo.Get"

	db := r.handle()

	f, err := scanFlight(db.QueryRow(ctx,
		`SELECT `+flightColumns+`
		 FROM flights WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &f, nil
}

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var (
		f                domain.Flight
		depDate, arrDate time.Time
		gate, terminal   *string
		seat             *string
		status           string
	)

	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.FlightNumber,
		&f.Airline,
		&f.DepartureAirport,
		&f.ArrivalAirport,
		&depDate,
		&f.DepartureTime,
		&arrDate,
		&f.ArrivalTime,
		&gate,
		&terminal,
		&seat,
		&status,
		&f.BookingReference,
		&f.PassengerName,
		&f.CreatedAt,
	)
	if err != nil {
		return domain.Flight{}, err
	}

	f.DepartureDate = domain.DateOf(depDate)
	f.ArrivalDate = domain.DateOf(arrDate)
	f.Gate = deref(gate)
	f.Terminal = deref(terminal)
	f.Seat = deref(seat)
	f.Status = domain.FlightStatus(status)

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
