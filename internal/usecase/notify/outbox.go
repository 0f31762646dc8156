package notify

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/metrics"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

// StaleProcessingAfter is how long a job may stay in processing before it is
// assumed abandoned by a crashed worker and requeued.
const StaleProcessingAfter = 10 * time.Minute

type OutboxProcessor struct {
	uow         shared.UnitOfWork
	dispatcher  *Dispatcher
	clock       clock.Clock
	batchSize   int32
	concurrency int
	logger      *slog.Logger
}

func NewOutboxProcessor(uow shared.UnitOfWork, dispatcher *Dispatcher, clock clock.Clock, batchSize int32, concurrency int, logger *slog.Logger) *OutboxProcessor {
	if batchSize <= 0 {
		batchSize = 20
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &OutboxProcessor{
		uow:         uow,
		dispatcher:  dispatcher,
		clock:       clock,
		batchSize:   batchSize,
		concurrency: concurrency,
		logger:      logger,
	}
}

// RunOnce claims one batch of due jobs, delivers them on a bounded pool and
// persists each outcome. It returns how many jobs were claimed. A failed save
// is logged for that job only; the job stays in processing until RecoverStale.
func (p *OutboxProcessor) RunOnce(ctx context.Context) (int, error) {
	var jobs []*notification.Job
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), p.clock.Now(), p.batchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(jobs) == 0 {
		return 0, nil
	}
	metrics.AddOutboxClaimed(len(jobs))

	// outcomes are recorded even after ctx is cancelled so a shutdown does not
	// strand delivered jobs in processing
	saveCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for _, job := range jobs {
		g.Go(func() error {
			p.dispatcher.Dispatch(ctx, job)
			p.save(saveCtx, job)
			return nil
		})
	}
	_ = g.Wait()
	return len(jobs), nil
}

// RecoverStale requeues jobs stuck in processing.
func (p *OutboxProcessor) RecoverStale(ctx context.Context) (int64, error) {
	var n int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Notifications().RequeueStale(ctx, tx.DB(), p.clock.Now().Add(-StaleProcessingAfter))
		return err
	})
	if err == nil && n > 0 {
		p.logger.Warn("requeued stale notification jobs", "count", n)
	}
	return n, err
}

func (p *OutboxProcessor) save(ctx context.Context, job *notification.Job) {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().SaveResult(ctx, tx.DB(), job, p.clock.Now())
	})
	if err != nil {
		p.logger.Error("failed to record notification outcome",
			"job_id", job.ID(),
			"status", string(job.Status()),
			"error", err.Error())
	}
}
