package app

import (
	"context"
	"log/slog"

	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/kirinyoku/flightdesk/internal/metrics"
	"github.com/kirinyoku/flightdesk/internal/service/checkin"
)

// observedPublisher counts and logs failed check-in publishes. The check-in
// itself has already been recorded, so the error only surfaces here.
type observedPublisher struct {
	next    checkin.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func (p observedPublisher) PublishCheckIn(ctx context.Context, ci domain.CheckIn) error {
	err := p.next.PublishCheckIn(ctx, ci)
	if err != nil {
		p.metrics.PublishFailures.Inc()
		p.logger.Warn("failed to publish check-in",
			"flight_id", ci.FlightID,
			"check_in_id", ci.ID.String(),
			"error", err,
		)
	}
	return err
}
