package jobs

import (
	"context"
	"log/slog"
	"time"

	"entrega/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob periodically cancels orders that sat unconfirmed past
// their allowed age. Orders that a restaurant confirms while the sweep is
// running are left alone.
type OrderExpiryJob struct {
	handler  commands.ExpireStaleOrdersCommandHandler
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderExpiryJob creates a job that expires stale pending orders on the
// given cron schedule (with seconds field).
func NewOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler:  handler,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_expiry_job"),
	}
}

// Start schedules the expiry sweep.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started", "schedule", j.schedule, "max_age", j.maxAge)
	return nil
}

// Stop stops the expiry sweep.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
