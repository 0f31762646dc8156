package queries

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
)

const DefaultRecentJobsLimit = 50

type NotificationReadStore interface {
	ListRecent(ctx context.Context, status string, limit int32) ([]*NotificationJobView, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type NotificationQueries interface {
	Recent(ctx context.Context, status string, limit int) ([]*NotificationJobView, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) Recent(ctx context.Context, status string, limit int) ([]*NotificationJobView, error) {
	if limit <= 0 {
		limit = DefaultRecentJobsLimit
	}
	limit = ValidateLimit(limit)

	switch notification.JobStatus(status) {
	case "", notification.JobQueued, notification.JobProcessing, notification.JobSent, notification.JobFailed, notification.JobSkipped:
	default:
		status = ""
	}
	return q.readStore.ListRecent(ctx, status, int32(limit))
}

func (q *notificationQueriesImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return q.readStore.CountByStatus(ctx)
}
