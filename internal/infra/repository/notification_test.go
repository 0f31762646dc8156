//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
)

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockNotificationWriteQueries) ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.NotificationJobs)
	return rows, args.Error(1)
}

func (m *MockNotificationWriteQueries) UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockNotificationWriteQueries) RequeueStaleNotificationJobs(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func queuedJob(t *testing.T) *notification.Job {
	t.Helper()
	job, err := notification.NewJob(notification.KindEmail, notification.TopicContactMessageEmail,
		notification.Message{To: "admin@example.com", Template: notification.TemplateContactMessage}, testNow, 3)
	require.NoError(t, err)
	return job
}

func TestNotificationRepository_Enqueue(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := queuedJob(t)
			mockQueries := new(MockNotificationWriteQueries)
			mockQueries.On("CreateNotificationJob", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateNotificationJobParams) bool {
				return p.ID == job.ID() && p.Status == "queued" && p.Topic == notification.TopicContactMessageEmail
			})).Return(tt.mockError)

			err := NewNotificationRepository(mockQueries, nil).Enqueue(context.Background(), nil, job)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	good := sqlc.NotificationJobs{
		ID:          uuid.New(),
		Kind:        "email",
		Topic:       notification.TopicContactMessageEmail,
		Payload:     []byte(`{"to":"admin@example.com","template":"contact_message"}`),
		Attempts:    1,
		MaxAttempts: 3,
		Status:      "processing",
	}
	broken := sqlc.NotificationJobs{ID: uuid.New(), Kind: "email", Payload: []byte("not json"), Status: "processing"}

	t.Run("skips undecodable rows", func(t *testing.T) {
		mockQueries := new(MockNotificationWriteQueries)
		mockQueries.On("ClaimDueNotificationJobs", mock.Anything, mock.Anything, sqlc.ClaimDueNotificationJobsParams{
			Now:        pgtype.Timestamptz{Time: testNow, Valid: true},
			BatchLimit: 10,
		}).Return([]sqlc.NotificationJobs{good, broken}, nil)

		jobs, err := NewNotificationRepository(mockQueries, nil).ClaimDue(context.Background(), nil, testNow, 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, good.ID, jobs[0].ID())
		assert.Equal(t, notification.JobProcessing, jobs[0].Status())
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockNotificationWriteQueries)
		mockQueries.On("ClaimDueNotificationJobs", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		jobs, err := NewNotificationRepository(mockQueries, nil).ClaimDue(context.Background(), nil, testNow, 10)

		assert.Nil(t, jobs)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_SaveResult(t *testing.T) {
	job := queuedJob(t)
	job.MarkFailed(errors.New("smtp down"), testNow, time.Minute)

	mockQueries := new(MockNotificationWriteQueries)
	mockQueries.On("UpdateNotificationJobStatus", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateNotificationJobStatusParams) bool {
		return p.ID == job.ID() &&
			p.Status == string(job.Status()) &&
			p.LastError.Valid && p.LastError.String == "smtp down" &&
			p.UpdatedAt.Time.Equal(testNow)
	})).Return(nil)

	err := NewNotificationRepository(mockQueries, nil).SaveResult(context.Background(), nil, job, testNow)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestNotificationRepository_RequeueStale(t *testing.T) {
	cutoff := testNow.Add(-10 * time.Minute)

	mockQueries := new(MockNotificationWriteQueries)
	mockQueries.On("RequeueStaleNotificationJobs", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: cutoff, Valid: true}).
		Return(int64(2), nil).Once()
	mockQueries.On("RequeueStaleNotificationJobs", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), assert.AnError).Once()

	repo := NewNotificationRepository(mockQueries, nil)

	n, err := repo.RequeueStale(context.Background(), nil, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.RequeueStale(context.Background(), nil, cutoff)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
