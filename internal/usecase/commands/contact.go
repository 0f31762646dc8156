package commands

import (
	"context"
	"strings"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
)

const MaxContactMessageLength = 5000

var ErrInvalidContactMessage = errs.New("name, valid email and a message are required")

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactNotifier interface {
	ContactMessage(ctx context.Context, tokens notification.Tokens) error
}

type ContactCommands interface {
	Send(ctx context.Context, in ContactInput) error
}

type contactCommandsImpl struct {
	notifier  ContactNotifier
	formatter *notify.TokenFormatter
}

func NewContactCommands(notifier ContactNotifier, formatter *notify.TokenFormatter) ContactCommands {
	return &contactCommandsImpl{notifier: notifier, formatter: formatter}
}

func (c *contactCommandsImpl) Send(ctx context.Context, in ContactInput) error {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	email, err := user.NewEmail(in.Email)
	if err != nil || name == "" || message == "" || len(message) > MaxContactMessageLength {
		return validationErr(ErrInvalidContactMessage)
	}

	return c.notifier.ContactMessage(ctx, notification.Tokens{
		notification.TokenUserName: name,
		notification.TokenEmail:    email.Value(),
		notification.TokenMessage:  message,
		notification.TokenSiteName: c.formatter.SiteName(),
	})
}
