package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kirinyoku/flightdesk/internal/config"
	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/metrics"
	"github.com/kirinyoku/flightdesk/internal/postgres"
	"github.com/kirinyoku/flightdesk/internal/ratelimit"
	"github.com/kirinyoku/flightdesk/internal/redis"
	"github.com/kirinyoku/flightdesk/internal/repository/memory"
	postgresrepo "github.com/kirinyoku/flightdesk/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/flightdesk/internal/repository/redis"
	"github.com/kirinyoku/flightdesk/internal/service"
	"github.com/kirinyoku/flightdesk/internal/service/checkin"
	"github.com/kirinyoku/flightdesk/internal/service/directory"
	httpgin "github.com/kirinyoku/flightdesk/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	metrics    *metrics.Metrics
	pubsub     *redisrepo.CheckInPubSub
	closers    []func()
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx := context.Background()

	a := &App{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	var repo directory.Repository
	switch cfg.DataSource {
	case config.SourcePostgres:
		pool, err := postgres.New(ctx, postgres.Config{DSN: cfg.Postgres.DSN()})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		repo = postgresrepo.NewStore(pool)
	default:
		repo = memory.NewSeeded()
	}

	deps := httpgin.Deps{Metrics: a.metrics}

	var (
		cache     *redisrepo.Cache
		publisher checkin.Publisher
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redis.New(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })

		cache = redisrepo.New(rdb)
		// A previous run may have cached a different flight source.
		if err := cache.InvalidateFlights(ctx); err != nil {
			logger.Warn("failed to invalidate flight cache", "error", err)
		}

		a.pubsub = redisrepo.NewCheckInPubSub(rdb)
		publisher = observedPublisher{next: a.pubsub, metrics: a.metrics, logger: logger}

		deps.Limiter = redisrepo.NewSlidingWindowLimiter(rdb, "api", cfg.RateLimit.Limit, cfg.RateLimit.Window)
		deps.Idempotency = redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)
	} else {
		deps.Limiter = ratelimit.NewLocal(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	services := service.NewServices(repo, cache, publisher, service.Config{
		Directory: directory.Config{
			Location: cfg.Location,
			CacheTTL: cfg.CacheTTL,
		},
		CheckIn: checkin.Config{
			SessionTTL: cfg.CheckInTTL,
		},
	})

	router := httpgin.NewRouter(services, deps, logger)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("application initialized",
		"data_source", cfg.DataSource,
		"redis", cfg.Redis.Addr != "",
		"timezone", cfg.Location.String(),
	)

	return a, nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// the server down and releases resources.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	if a.pubsub != nil {
		g.Go(func() error {
			err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, ci domain.CheckIn) {
				a.metrics.CheckInsSeen.Inc()
				a.logger.Info("check-in completed",
					"flight_id", ci.FlightID,
					"seat", ci.Seat,
					"check_in_id", ci.ID.String(),
				)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	return g.Wait()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
