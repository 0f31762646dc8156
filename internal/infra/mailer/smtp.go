package mailer

import (
	"context"
	"crypto/tls"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers plain-text mail through a single SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.UseSSL
	if cfg.UseTLS || cfg.UseSSL {
		d.TLSConfig = &tls.Config{ServerName: cfg.Server, MinVersion: tls.VersionTLS12}
	}
	return &SMTPMailer{dialer: d}
}

// Send dials, authenticates and sends one message. gomail has no context
// support, so cancellation abandons the dial goroutine rather than interrupting it.
func (m *SMTPMailer) Send(ctx context.Context, email notify.Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", email.From)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.Wrap(err, "smtp send")
		}
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "smtp send")
	}
}
