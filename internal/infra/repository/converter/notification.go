package converter

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

func JobToCreateParams(job *notification.Job) (sqlc.CreateNotificationJobParams, error) {
	payload, err := job.Message().Encode()
	if err != nil {
		return sqlc.CreateNotificationJobParams{}, err
	}
	return sqlc.CreateNotificationJobParams{
		ID:          job.ID(),
		Kind:        string(job.Kind()),
		Topic:       job.Topic(),
		Payload:     payload,
		RunAt:       pgconv.TimeToPgtype(job.RunAt()),
		MaxAttempts: job.MaxAttempts(),
		Status:      string(job.Status()),
		CreatedAt:   pgconv.TimeToPgtype(job.CreatedAt()),
	}, nil
}

// JobFromRow fails when the stored payload no longer decodes.
func JobFromRow(row sqlc.NotificationJobs) (*notification.Job, error) {
	msg, err := notification.DecodeMessage(row.Payload)
	if err != nil {
		return nil, err
	}
	return notification.ReconstructJob(
		row.ID,
		notification.Kind(row.Kind),
		row.Topic,
		msg,
		pgconv.TimeFromPgtype(row.RunAt),
		row.Attempts,
		row.MaxAttempts,
		notification.JobStatus(row.Status),
		pgconv.StringPtrFromPgtype(row.LastError),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
