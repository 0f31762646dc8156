//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	commandsmock "github.com/Zolbayar-hub/holisticweb/internal/mock/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
)

func TestContactCommands_Send(t *testing.T) {
	formatter := notify.NewTokenFormatter("UTC", "Holistic Web")

	t.Run("forwards trimmed message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := commandsmock.NewMockContactNotifier(ctrl)
		notifier.EXPECT().ContactMessage(gomock.Any(), notification.Tokens{
			notification.TokenUserName: "Jane",
			notification.TokenEmail:    "jane@example.com",
			notification.TokenMessage:  "Do you offer group sessions?",
			notification.TokenSiteName: "Holistic Web",
		}).Return(nil)

		err := commands.NewContactCommands(notifier, formatter).Send(context.Background(), commands.ContactInput{
			Name:    "  Jane ",
			Email:   "jane@example.com",
			Message: " Do you offer group sessions?\n",
		})
		require.NoError(t, err)
	})

	tests := []struct {
		name string
		in   commands.ContactInput
	}{
		{name: "missing name", in: commands.ContactInput{Email: "jane@example.com", Message: "hi"}},
		{name: "bad email", in: commands.ContactInput{Name: "Jane", Email: "jane", Message: "hi"}},
		{name: "blank message", in: commands.ContactInput{Name: "Jane", Email: "jane@example.com", Message: "  "}},
		{name: "message too long", in: commands.ContactInput{Name: "Jane", Email: "jane@example.com", Message: strings.Repeat("a", commands.MaxContactMessageLength+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := commandsmock.NewMockContactNotifier(ctrl)

			err := commands.NewContactCommands(notifier, formatter).Send(context.Background(), tt.in)

			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}

	t.Run("unconfigured admin address surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := commandsmock.NewMockContactNotifier(ctrl)
		notifier.EXPECT().ContactMessage(gomock.Any(), gomock.Any()).Return(notify.ErrNoAdminAddress)

		err := commands.NewContactCommands(notifier, formatter).Send(context.Background(), commands.ContactInput{
			Name: "Jane", Email: "jane@example.com", Message: "hi",
		})
		assert.True(t, errs.Is(err, notify.ErrNoAdminAddress))
	})
}
