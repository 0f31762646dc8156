package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/metrics"
)

const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeRetry   = "retry"
	OutcomeFailed  = "failed"
)

// Dispatcher delivers a single claimed outbox job and records the outcome on it.
type Dispatcher struct {
	resolver *Resolver
	email    *EmailSender
	sms      *SMSSender
	clock    clock.Clock
	backoff  time.Duration
	logger   *slog.Logger
}

func NewDispatcher(resolver *Resolver, email *EmailSender, sms *SMSSender, clock clock.Clock, backoff time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		email:    email,
		sms:      sms,
		clock:    clock,
		backoff:  backoff,
		logger:   logger,
	}
}

// SenderStatus reports which channels have credentials.
type SenderStatus struct {
	EmailEnabled bool `json:"email_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`
}

func (d *Dispatcher) Status() SenderStatus {
	return SenderStatus{EmailEnabled: d.email.Enabled(), SMSEnabled: d.sms.Enabled()}
}

// Dispatch returns the outcome label; the job carries the new status.
func (d *Dispatcher) Dispatch(ctx context.Context, job *notification.Job) string {
	err := d.deliver(ctx, job)
	now := d.clock.Now()

	var outcome string
	switch {
	case err == nil:
		job.MarkSent(now)
		outcome = OutcomeSent
	case isPermanent(err):
		job.MarkSkipped(err.Error(), now)
		outcome = OutcomeSkipped
	default:
		job.MarkFailed(err, now, d.backoff)
		outcome = OutcomeFailed
		if job.Status() == notification.JobQueued {
			outcome = OutcomeRetry
		}
	}

	metrics.IncNotificationDelivery(string(job.Kind()), outcome)
	d.logger.Info("notification processed",
		"job_id", job.ID(),
		"topic", job.Topic(),
		"attempt", job.Attempts(),
		"outcome", outcome)
	return outcome
}

func (d *Dispatcher) deliver(ctx context.Context, job *notification.Job) error {
	msg := job.Message()
	subject, body := d.resolver.Resolve(ctx, msg.Template, msg.Tokens)

	switch job.Kind() {
	case notification.KindEmail:
		return d.email.Send(ctx, msg.To, subject, body)
	case notification.KindSMS:
		return d.sms.Send(ctx, msg.To, body)
	default:
		return notification.ErrInvalidKind
	}
}

// Retrying cannot fix a disabled sender, a bad number or an unknown kind.
func isPermanent(err error) bool {
	return errs.Is(err, ErrSenderDisabled) ||
		errs.Is(err, notification.ErrInvalidPhone) ||
		errs.Is(err, notification.ErrInvalidKind)
}
