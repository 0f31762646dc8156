package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
)

type ReminderRunner interface {
	Scan(ctx context.Context) (notify.ScanReport, error)
}

type ReminderWorker struct {
	runner   ReminderRunner
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReminderWorker(runner ReminderRunner, interval time.Duration, logger *slog.Logger) *ReminderWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReminderWorker{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx)
	}()
	w.logger.Info("reminder worker started", "interval", w.interval.String())
}

func (w *ReminderWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info("reminder worker stopped")
}

// loop waits a full interval before the first scan, matching a scheduler
// that fires on its period rather than at registration.
func (w *ReminderWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.runner.Scan(ctx); err != nil && ctx.Err() == nil {
				w.logger.Error("reminder scan failed", "error", err.Error())
			}
		}
	}
}
