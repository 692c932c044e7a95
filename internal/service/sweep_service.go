package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-kit/lostfound-service/internal/events"
	"github.com/campus-kit/lostfound-service/internal/observability"
	"github.com/campus-kit/lostfound-service/internal/repository"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// SweepService archives stale active items. It is the only writer that
// may set an item's status to archived.
type SweepService struct {
	items      repository.ItemRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	maxAge     time.Duration
	now        func() time.Time
}

// SweepDependencies bundles collaborators for the sweep.
type SweepDependencies struct {
	ItemRepo   repository.ItemRepository
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	MaxAge     time.Duration
	Now        func() time.Time
}

// NewSweepService constructs the service.
func NewSweepService(deps SweepDependencies) *SweepService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SweepService{
		items:      deps.ItemRepo,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		maxAge:     deps.MaxAge,
		now:        now,
	}
}

// ArchiveStale transitions every active item older than the configured
// age to archived and returns the count. The status predicate sits in
// the UPDATE itself, so a repeat run finds nothing to do and an item
// collected mid-sweep is left alone.
func (s *SweepService) ArchiveStale(ctx context.Context) (int64, error) {
	runAt := s.now()
	cutoff := runAt.Add(-s.maxAge)

	count, err := s.items.ArchiveOlderThan(ctx, cutoff, runAt)
	if err != nil {
		return 0, apperrors.NewOperationFailed(err)
	}

	s.metrics.RecordSweep(int(count))
	s.logger.Info("archival sweep finished",
		zap.Int64("archived", count),
		zap.Time("cutoff", cutoff),
	)

	if count > 0 && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventItemsArchived,
			Actor:     events.SystemActor(),
			Timestamp: runAt,
			Payload: events.ItemsArchivedPayload{
				Count:  count,
				Cutoff: cutoff,
			},
		})
	}
	return count, nil
}
