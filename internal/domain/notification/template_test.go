//go:build unit

package notification_test

import (
	"testing"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tokens notification.Tokens
		want   string
	}{
		{
			name:   "known tokens replaced",
			text:   "Hello {user_name}, see you at {start_time}",
			tokens: notification.Tokens{"user_name": "Jane", "start_time": "2:00 PM"},
			want:   "Hello Jane, see you at 2:00 PM",
		},
		{
			name:   "unknown tokens stay verbatim",
			text:   "Hello {user_name} {unknown}",
			tokens: notification.Tokens{"user_name": "Jane"},
			want:   "Hello Jane {unknown}",
		},
		{
			name:   "repeated token",
			text:   "{a}{a}",
			tokens: notification.Tokens{"a": "x"},
			want:   "xx",
		},
		{
			name:   "replacement is not re-expanded",
			text:   "{message}",
			tokens: notification.Tokens{"message": "{user_name}", "user_name": "Jane"},
			want:   "{user_name}",
		},
		{
			name:   "no tokens",
			text:   "Price: ${service_price}",
			tokens: nil,
			want:   "Price: ${service_price}",
		},
		{
			name:   "dollar sign kept before token",
			text:   "Price: ${service_price}",
			tokens: notification.Tokens{"service_price": "50"},
			want:   "Price: $50",
		},
		{
			name:   "empty value",
			text:   "Phone: {phone_number}.",
			tokens: notification.Tokens{"phone_number": ""},
			want:   "Phone: .",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notification.Substitute(tt.text, tt.tokens))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := notification.Placeholders("Hi {user_name}, {service_name} at {start_time}. Bye {user_name}")
	want := []string{"user_name", "service_name", "start_time"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Placeholders mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, notification.Placeholders("no tokens here"))
}

func TestNewTemplate(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tmpl, err := notification.NewTemplate("booking_confirmation", " Subject {x} ", "Body", "", now)
	require.NoError(t, err)
	subject, body := tmpl.Render(notification.Tokens{"x": "1"})
	assert.Equal(t, "Subject 1", subject)
	assert.Equal(t, "Body", body)

	_, err = notification.NewTemplate("Booking Confirmation", "s", "b", "", now)
	require.ErrorIs(t, err, notification.ErrInvalidTemplateName)

	_, err = notification.NewTemplate("name", "", "b", "", now)
	require.ErrorIs(t, err, notification.ErrInvalidSubject)

	_, err = notification.NewTemplate("name", "s", " \n ", "", now)
	require.ErrorIs(t, err, notification.ErrEmptyBody)
}

func TestDefaultTemplate(t *testing.T) {
	for _, name := range notification.BuiltinNames() {
		tmpl := notification.DefaultTemplate(name)
		assert.Equal(t, name, tmpl.Name())
		assert.NotEmpty(t, tmpl.Body())
		assert.True(t, notification.HasBuiltin(name))
	}

	generic := notification.DefaultTemplate("welcome_back")
	assert.Equal(t, "welcome_back", generic.Name())
	assert.False(t, notification.HasBuiltin("welcome_back"))

	// defaults are copies
	a := notification.DefaultTemplate(notification.TemplateBookingConfirmation)
	require.NoError(t, a.Update("changed", "s", "b", "", time.Now()))
	assert.Equal(t, notification.TemplateBookingConfirmation, notification.DefaultTemplate(notification.TemplateBookingConfirmation).Name())
}
