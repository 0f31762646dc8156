package notify

import (
	"context"
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

// Enqueuer records notification intents in the outbox and wakes the worker.
type Enqueuer struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	maxAttempts int32
	adminEmail  string
	wake        *WakeSignal
	logger      *slog.Logger
}

func NewEnqueuer(uow shared.UnitOfWork, clock clock.Clock, maxAttempts int32, adminEmail string, wake *WakeSignal, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{
		uow:         uow,
		clock:       clock,
		maxAttempts: maxAttempts,
		adminEmail:  adminEmail,
		wake:        wake,
		logger:      logger,
	}
}

type intent struct {
	kind     notification.Kind
	topic    string
	to       string
	template string
}

// BookingCreated queues the customer confirmation email, the admin notice when an
// admin address is configured, and the confirmation SMS when the customer gave a phone.
// It returns the number of jobs queued.
func (e *Enqueuer) BookingCreated(ctx context.Context, customerEmail, phone string, tokens notification.Tokens) (int, error) {
	intents := []intent{{
		kind:     notification.KindEmail,
		topic:    notification.TopicBookingConfirmationEmail,
		to:       customerEmail,
		template: notification.TemplateBookingConfirmation,
	}}
	if e.adminEmail != "" {
		intents = append(intents, intent{
			kind:     notification.KindEmail,
			topic:    notification.TopicBookingAdminNoticeEmail,
			to:       e.adminEmail,
			template: notification.TemplateAdminBookingNotification,
		})
	}
	if phone != "" {
		intents = append(intents, intent{
			kind:     notification.KindSMS,
			topic:    notification.TopicBookingConfirmationSMS,
			to:       phone,
			template: notification.TemplateBookingConfirmationSMS,
		})
	}
	return e.enqueue(ctx, intents, tokens)
}

// ContactMessage forwards a contact form submission to the admin address.
func (e *Enqueuer) ContactMessage(ctx context.Context, tokens notification.Tokens) error {
	if e.adminEmail == "" {
		return ErrNoAdminAddress
	}
	_, err := e.enqueue(ctx, []intent{{
		kind:     notification.KindEmail,
		topic:    notification.TopicContactMessageEmail,
		to:       e.adminEmail,
		template: notification.TemplateContactMessage,
	}}, tokens)
	return err
}

func (e *Enqueuer) enqueue(ctx context.Context, intents []intent, tokens notification.Tokens) (int, error) {
	now := e.clock.Now()
	jobs := make([]*notification.Job, 0, len(intents))
	for _, in := range intents {
		job, err := notification.NewJob(in.kind, in.topic, notification.Message{
			To:       in.to,
			Template: in.template,
			Tokens:   tokens,
		}, now, e.maxAttempts)
		if err != nil {
			return 0, errs.Wrap(err, "build notification job")
		}
		jobs = append(jobs, job)
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, job := range jobs {
			if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		e.logger.Debug("notification queued", "job_id", job.ID(), "topic", job.Topic())
	}
	e.wake.Wake()
	return len(jobs), nil
}
