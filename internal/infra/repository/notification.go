package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/repository/converter"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
	RequeueStaleNotificationJobs(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, job *notification.Job) error {
	params, err := converter.JobToCreateParams(job)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue skips rows whose payload cannot be decoded; they stay in processing
// until RequeueStale picks them up again.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*notification.Job, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		BatchLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]*notification.Job, 0, len(rows))
	for _, row := range rows {
		job, err := converter.JobFromRow(row)
		if err != nil {
			slog.Warn("undecodable notification job", "job_id", row.ID, "error", err.Error())
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (r *NotificationRepository) SaveResult(ctx context.Context, tx sqlc.DBTX, job *notification.Job, now time.Time) error {
	err := r.queries.UpdateNotificationJobStatus(ctx, tx, sqlc.UpdateNotificationJobStatusParams{
		ID:        job.ID(),
		Status:    string(job.Status()),
		LastError: pgconv.StringPtrToPgtype(job.LastError()),
		RunAt:     pgconv.TimeToPgtype(job.RunAt()),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

func (r *NotificationRepository) RequeueStale(ctx context.Context, tx sqlc.DBTX, olderThan time.Time) (int64, error) {
	n, err := r.queries.RequeueStaleNotificationJobs(ctx, tx, pgconv.TimeToPgtype(olderThan))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue stale notification jobs", err)
	}
	return n, nil
}
