package readstore

import (
	"context"
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type NotificationViewQueries interface {
	ListRecentNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	CountNotificationJobsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountNotificationJobsByStatusRow, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) ListRecent(ctx context.Context, status string, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := r.queries.ListRecentNotificationJobs(ctx, r.db, sqlc.ListRecentNotificationJobsParams{
		Status:    pgconv.OptionalStringToPgtype(status),
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	views := make([]*queries.NotificationJobView, 0, len(rows))
	for _, row := range rows {
		view := &queries.NotificationJobView{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
			Attempts:    row.Attempts,
			MaxAttempts: row.MaxAttempts,
			Status:      row.Status,
			LastError:   pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
		// the listing stays usable when a payload is corrupt; recipient and template are left blank
		if msg, err := notification.DecodeMessage(row.Payload); err == nil {
			view.Recipient = msg.To
			view.Template = msg.Template
		} else {
			slog.Warn("undecodable notification payload", "job_id", row.ID, "error", err.Error())
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *NotificationReadStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.queries.CountNotificationJobsByStatus(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count notification jobs", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
