package worker

import (
	"context"
	"log"
	"time"

	"canonforces/internal/app/service"
)

// RefreshWorker keeps the contest cache warm so sidebar mounts rarely pay for
// a full upstream aggregation.
type RefreshWorker struct {
	contests *service.ContestService
	interval time.Duration
}

func NewRefreshWorker(contests *service.ContestService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		contests: contests,
		interval: interval,
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	log.Printf("Contest refresh worker started, interval %s", w.interval)

	// Prime the cache once at startup before settling into the interval.
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Contest refresh worker stopping...")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	contests, err := w.contests.Refresh(ctx)
	if err != nil {
		log.Printf("ERROR: contest refresh failed: %v", err)
		return
	}
	log.Printf("INFO: contest cache refreshed, %d upcoming contests", len(contests))
}
