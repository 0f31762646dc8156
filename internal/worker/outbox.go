package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
)

type OutboxRunner interface {
	RunOnce(ctx context.Context) (int, error)
	RecoverStale(ctx context.Context) (int64, error)
}

// OutboxWorker drains notification_jobs on a poll interval and whenever the
// enqueuer signals new work. Jobs abandoned in processing are requeued at
// startup and then every recoverEvery.
type OutboxWorker struct {
	runner       OutboxRunner
	wake         <-chan struct{}
	interval     time.Duration
	recoverEvery time.Duration
	logger       *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxWorker(runner OutboxRunner, wake *notify.WakeSignal, interval, recoverEvery time.Duration, logger *slog.Logger) *OutboxWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if recoverEvery <= 0 {
		recoverEvery = time.Minute
	}
	var ch <-chan struct{}
	if wake != nil {
		ch = wake.C()
	}
	return &OutboxWorker{
		runner:       runner,
		wake:         ch,
		interval:     interval,
		recoverEvery: recoverEvery,
		logger:       logger,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx)
	}()
	w.logger.Info("outbox worker started", "interval", w.interval.String())
}

// Stop cancels the loop and waits for the in-flight batch to finish.
func (w *OutboxWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info("outbox worker stopped")
}

func (w *OutboxWorker) loop(ctx context.Context) {
	w.recoverStale(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	recoverTicker := time.NewTicker(w.recoverEvery)
	defer recoverTicker.Stop()

	for {
		w.drain(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-w.wake:
		case <-recoverTicker.C:
			w.recoverStale(ctx)
		}
	}
}

func (w *OutboxWorker) recoverStale(ctx context.Context) {
	if _, err := w.runner.RecoverStale(ctx); err != nil && ctx.Err() == nil {
		w.logger.Error("failed to requeue stale notification jobs", "error", err.Error())
	}
}

// drain keeps claiming while full batches come back so a burst does not wait
// for the next tick.
func (w *OutboxWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := w.runner.RunOnce(ctx)
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Error("outbox batch failed", "error", err.Error())
			}
			return
		}
		if n == 0 {
			return
		}
		w.logger.Debug("outbox batch processed", "claimed", n)
	}
}
