package draftsimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/remixgram/internal/domain"
)

func (d *DraftsImpl) CleanupOlderThan(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	d.mu.Lock()
	defer d.mu.Unlock()

	kept := make([]domain.Draft, 0, len(d.drafts))
	for _, draft := range d.drafts {
		if draft.CreatedAt.Before(cutoff) {
			continue
		}
		kept = append(kept, draft)
	}

	removed := len(d.drafts) - len(kept)
	if removed > 0 {
		d.drafts = kept
		d.DraftsRepo.SaveAsync(d.drafts)
	}
	return removed, nil
}

// ScheduleCleanup sets up a daily job that prunes drafts older than the
// configured max age. A zero max age disables the job.
func (d *DraftsImpl) ScheduleCleanup(ctx context.Context) error {
	maxAge := d.Config.Drafts.MaxAge
	if maxAge <= 0 {
		d.Logger.Info("Draft cleanup disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create draft cleanup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)), // At 3:00 AM
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				d.Logger.Info("Context cancelled, stopping draft cleanup job")
				return
			}

			removed, err := d.CleanupOlderThan(ctx, maxAge)
			if err != nil {
				d.Logger.Error("Failed to clean up stale drafts", "error", err)
				return
			}
			if removed > 0 {
				d.Logger.Info("Stale drafts removed", "count", removed)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule draft cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		d.Logger.Info("Stopping draft cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			d.Logger.Error("Failed to shut down draft cleanup scheduler", "error", err)
		}
	}()

	return nil
}
