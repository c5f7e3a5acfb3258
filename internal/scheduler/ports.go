package scheduler

import (
	"context"
	"walletsync/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name JobStore . JobStore
type JobStore interface {
	DueStatusUpdates(ctx context.Context, now int64) ([]repository.StatusUpdate, error)
	DeleteStatusUpdate(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name StatusPropagator . StatusPropagator
type StatusPropagator interface {
	PropagateStatus(ctx context.Context, wallet, hash, status string, confirmations *int) error
}
