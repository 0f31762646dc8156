package notify

import (
	"context"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

// Email is one outbound plain-text message.
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type SMSGateway interface {
	// SendSMS returns the provider message id.
	SendSMS(ctx context.Context, to, body string) (string, error)
}

type TemplateLookup interface {
	FindByName(ctx context.Context, name string) (*queries.TemplateView, error)
}

type BookingWindowReader interface {
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*queries.ReminderCandidate, error)
}
