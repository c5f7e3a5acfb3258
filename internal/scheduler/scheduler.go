package scheduler

import (
	"context"
	"errors"
	"time"
	"walletsync/internal/core"

	"go.uber.org/zap"
)

var TimeNow = time.Now

// Scheduler applies deferred status transitions persisted in the store. Jobs
// survive restarts; a fired job is deleted only after it has been applied or
// turned out to reference a transfer that no longer exists.
type Scheduler struct {
	logs       *zap.SugaredLogger
	jobs       JobStore
	propagator StatusPropagator
	interval   time.Duration
}

func NewScheduler(logger *zap.SugaredLogger, jobs JobStore, propagator StatusPropagator, interval time.Duration) *Scheduler {
	return &Scheduler{
		logs:       logger,
		jobs:       jobs,
		propagator: propagator,
		interval:   interval,
	}
}

// Run polls for due jobs until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ProcessDue(ctx)
		}
	}
}

// ProcessDue fires every job whose not-before instant has passed.
func (s *Scheduler) ProcessDue(ctx context.Context) {
	due, err := s.jobs.DueStatusUpdates(ctx, TimeNow().UnixMilli())
	if err != nil {
		s.logs.Errorw("failed to load due status updates", "error", err)
		return
	}

	for _, job := range due {
		confirmations := job.Confirmations
		err := s.propagator.PropagateStatus(ctx, job.OwningWallet, job.Hash, job.Status, &confirmations)
		if err != nil && !errors.Is(err, core.ErrTransferNotFound) {
			// transient failure: keep the job, the next tick retries it
			s.logs.Errorw("failed to propagate scheduled status", "error", err, "hash", job.Hash)
			continue
		}
		if errors.Is(err, core.ErrTransferNotFound) {
			s.logs.Warnw("dropping scheduled update for unknown transfer", "hash", job.Hash)
		}

		if err := s.jobs.DeleteStatusUpdate(ctx, job.ID); err != nil {
			s.logs.Errorw("failed to delete fired status update", "error", err, "id", job.ID)
		}
	}
}
