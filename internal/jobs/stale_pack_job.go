package jobs

import (
	"context"
	"log/slog"
	"time"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// StalePackJob periodically reports packing sessions left in progress beyond
// a configured age. The job is observational only: packs stay open until a
// packer completes or abandons them, so the sweep never mutates state.
type StalePackJob struct {
	handler   queries.GetStalePacksQueryHandler
	olderThan time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePackJob creates the sweep with its schedule and staleness threshold.
func NewStalePackJob(
	handler queries.GetStalePacksQueryHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *StalePackJob {
	return &StalePackJob{
		handler:   handler,
		olderThan: olderThan,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_pack_job"),
	}
}

// Start schedules the sweep.
func (j *StalePackJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale pack job started", "schedule", j.schedule, "older_than", j.olderThan)
	return nil
}

// Stop stops the sweep.
func (j *StalePackJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Stale pack job stopped")
}

func (j *StalePackJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetStalePacksQuery(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pack sweep misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pack sweep failed", "error", err)
		return
	}

	metrics.StalePacks.Set(float64(len(stale)))

	for _, p := range stale {
		j.logger.WarnContext(ctx, "Pack left in progress",
			"pack_id", p.PackID.String(),
			"order_no", p.OrderNo,
			"packed_by", p.PackedBy,
			"age", time.Since(p.CreatedAt).Round(time.Minute).String(),
		)
	}
}
