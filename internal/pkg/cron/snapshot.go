package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
)

// RegisterSnapshotSweep evicts expired snapshots every interval
func RegisterSnapshotSweep(s *Scheduler, store *snapshot.Store, interval time.Duration) {
	s.AddJob("snapshot-sweep", interval, func(ctx context.Context) error {
		evicted, err := store.Sweep(ctx)
		if err != nil {
			return err
		}
		if evicted > 0 {
			slog.Debug("Expired snapshots evicted", "count", evicted, "remaining", store.Len())
		}
		return nil
	})
}
