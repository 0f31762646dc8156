package notify

import (
	"context"
	"log/slog"
	"time"
)

const DefaultEmailTimeout = 10 * time.Second

// EmailSender sends one message per call. A sender built without credentials
// is disabled and never dials.
type EmailSender struct {
	mailer  Mailer
	from    string
	timeout time.Duration
	enabled bool
	logger  *slog.Logger
}

func NewEmailSender(mailer Mailer, from string, timeout time.Duration, logger *slog.Logger) *EmailSender {
	if timeout <= 0 {
		timeout = DefaultEmailTimeout
	}
	return &EmailSender{
		mailer:  mailer,
		from:    from,
		timeout: timeout,
		enabled: true,
		logger:  logger,
	}
}

func NewDisabledEmailSender(logger *slog.Logger) *EmailSender {
	return &EmailSender{logger: logger}
}

func (s *EmailSender) Enabled() bool {
	return s.enabled
}

func (s *EmailSender) Send(ctx context.Context, to, subject, body string) error {
	if !s.enabled {
		s.logger.Warn("email sender disabled, message dropped", "to", to, "subject", subject)
		return ErrSenderDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.mailer.Send(ctx, Email{
		From:    s.from,
		To:      to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		class := Classify(err)
		s.logger.Error("email delivery failed",
			"to", to,
			"subject", subject,
			"class", string(class),
			"error", err.Error())
		return markClass(err, class)
	}

	s.logger.Info("email sent", "to", to, "subject", subject)
	return nil
}
