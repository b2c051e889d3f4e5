package workers

import (
	"context"
	"time"

	"api/internal/events"
	"api/internal/messaging"

	"go.uber.org/zap"
)

// StatsRefreshWorker periodically requests a rebuild of the cached
// dashboard summary, bounding staleness after out-of-band dataset edits.
type StatsRefreshWorker struct {
	Publisher   messaging.IPublisher
	RunInterval time.Duration
}

// Start begins the refresh loop. It publishes one refresh immediately so
// a cold cache is warmed at startup, then runs on the configured
// interval. The worker respects context cancellation for graceful
// shutdown.
func (w *StatsRefreshWorker) Start(ctx context.Context) {
	zap.L().Info("Starting stats refresh worker",
		zap.Duration("interval", w.RunInterval))

	w.publishRefresh("startup")

	ticker := time.NewTicker(w.RunInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Stats refresh worker shutting down")
			return
		case <-ticker.C:
			w.publishRefresh("scheduled")
		}
	}
}

func (w *StatsRefreshWorker) publishRefresh(reason string) {
	if err := w.Publisher.Publish(events.NewRefreshMessage(reason)); err != nil {
		zap.L().Error("Failed to publish refresh event",
			zap.String("reason", reason), zap.Error(err))
	}
}
