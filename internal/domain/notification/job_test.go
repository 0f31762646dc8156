//go:build unit

package notification_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTPDown = errors.New("smtp down")

func newJob(t *testing.T, maxAttempts int32) *notification.Job {
	t.Helper()
	job, err := notification.NewJob(notification.KindEmail, notification.TopicBookingConfirmationEmail,
		notification.Message{To: "jane@example.com", Template: notification.TemplateBookingConfirmation},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), maxAttempts)
	require.NoError(t, err)
	return job
}

func TestNewJob(t *testing.T) {
	job := newJob(t, 0)
	assert.Equal(t, notification.JobQueued, job.Status())
	assert.Equal(t, int32(notification.DefaultMaxAttempts), job.MaxAttempts())
	assert.Zero(t, job.Attempts())

	_, err := notification.NewJob("fax", "t", notification.Message{To: "x"}, time.Now(), 1)
	require.ErrorIs(t, err, notification.ErrInvalidKind)

	_, err = notification.NewJob(notification.KindSMS, "t", notification.Message{To: " "}, time.Now(), 1)
	require.ErrorIs(t, err, notification.ErrMissingRecipient)
}

func TestJobMarkFailed(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	backoff := time.Minute

	t.Run("requeued with backoff while attempts remain", func(t *testing.T) {
		job := notification.ReconstructJob(newJob(t, 3).ID(), notification.KindEmail, "t",
			notification.Message{To: "a@b.co"}, now, 2, 3, notification.JobProcessing, nil, now)

		job.MarkFailed(errSMTPDown, now, backoff)

		assert.Equal(t, notification.JobQueued, job.Status())
		assert.Equal(t, now.Add(2*time.Minute), job.RunAt())
		require.NotNil(t, job.LastError())
		assert.Equal(t, "smtp down", *job.LastError())
	})

	t.Run("terminal once attempts are exhausted", func(t *testing.T) {
		job := notification.ReconstructJob(newJob(t, 3).ID(), notification.KindEmail, "t",
			notification.Message{To: "a@b.co"}, now, 3, 3, notification.JobProcessing, nil, now)

		job.MarkFailed(errSMTPDown, now, backoff)

		assert.Equal(t, notification.JobFailed, job.Status())
		assert.True(t, job.Status().IsTerminal())
	})

	t.Run("sent clears error", func(t *testing.T) {
		msg := "previous"
		job := notification.ReconstructJob(newJob(t, 3).ID(), notification.KindEmail, "t",
			notification.Message{To: "a@b.co"}, now, 1, 3, notification.JobProcessing, &msg, now)

		job.MarkSent(now)

		assert.Equal(t, notification.JobSent, job.Status())
		assert.Nil(t, job.LastError())
	})
}

func TestMessageEncoding(t *testing.T) {
	msg := notification.Message{
		To:       "+15551234567",
		Template: notification.TemplateBookingReminderSMS,
		Tokens:   notification.Tokens{"user_name": "Jane"},
	}
	b, err := msg.Encode()
	require.NoError(t, err)

	got, err := notification.DecodeMessage(b)
	require.NoError(t, err)
	if diff := cmp.Diff(msg, got); diff != "" {
		t.Errorf("Message mismatch (-want +got):\n%s", diff)
	}

	_, err = notification.DecodeMessage([]byte("{"))
	require.ErrorIs(t, err, notification.ErrInvalidPayload)

	_, err = notification.DecodeMessage([]byte(`{"template":"x"}`))
	require.ErrorIs(t, err, notification.ErrMissingRecipient)
}
