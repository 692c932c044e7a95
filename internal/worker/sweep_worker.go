package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campus-kit/lostfound-service/internal/config"
	"github.com/campus-kit/lostfound-service/internal/service"
)

// StartSweepWorker runs the archival sweep on a fixed schedule until
// the context is cancelled. The sweep is fire-and-forget: a failed run
// is logged and the next tick tries again.
func StartSweepWorker(ctx context.Context, sweep *service.SweepService, cfg config.SweepConfig, logger *zap.Logger) {
	go func() {
		delay := cfg.StartupDelay
		if delay <= 0 {
			delay = time.Second
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		runSweep(ctx, sweep, logger)

		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runSweep(ctx, sweep, logger)
			}
		}
	}()
}

func runSweep(ctx context.Context, sweep *service.SweepService, logger *zap.Logger) {
	if _, err := sweep.ArchiveStale(ctx); err != nil {
		logger.Error("archival sweep failed", zap.Error(err))
	}
}
