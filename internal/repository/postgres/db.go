package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/flightdesk/internal/domain"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}

// RunTx runs fn inside a transaction. Flight data is reference data, so the
// default is a read-only repeatable-read snapshot.
func (s *Store) RunTx(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}

	if opts != nil {
		txOpts.IsoLevel = opts.IsoLevel
		txOpts.AccessMode = opts.AccessMode
		txOpts.DeferrableMode = opts.DeferrableMode
	}

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) Flights() *FlightRepo { return &FlightRepo{pool: s.pool} }

// List reads the whole flight set from one read-only snapshot, retrying
// serialization failures a few times.
func (s *Store) List(ctx context.Context) ([]domain.Flight, error) {
	const attempts = 3

	var (
		out []domain.Flight
		err error
	)

	for i := 0; i < attempts; i++ {
		err = s.RunTx(ctx, nil, func(ctx context.Context, tx DB) error {
			var err error
			out, err = s.Flights().With(tx).List(ctx)
			return err
		})
		if err == nil || !IsRetryable(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Flight, error) {
	return s.Flights().Get(ctx, id)
}
