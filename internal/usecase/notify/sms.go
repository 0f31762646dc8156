package notify

import (
	"context"
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
)

// SMSSender normalizes the destination number and calls the gateway once.
type SMSSender struct {
	gateway     SMSGateway
	countryCode string
	enabled     bool
	logger      *slog.Logger
}

func NewSMSSender(gateway SMSGateway, countryCode string, logger *slog.Logger) *SMSSender {
	if countryCode == "" {
		countryCode = notification.DefaultCountryCode
	}
	return &SMSSender{
		gateway:     gateway,
		countryCode: countryCode,
		enabled:     true,
		logger:      logger,
	}
}

func NewDisabledSMSSender(logger *slog.Logger) *SMSSender {
	return &SMSSender{countryCode: notification.DefaultCountryCode, logger: logger}
}

func (s *SMSSender) Enabled() bool {
	return s.enabled
}

// Send returns notification.ErrInvalidPhone without calling the gateway when
// rawPhone cannot be normalized.
func (s *SMSSender) Send(ctx context.Context, rawPhone, body string) error {
	if !s.enabled {
		s.logger.Warn("sms sender disabled, message dropped", "to", rawPhone)
		return ErrSenderDisabled
	}

	to, err := notification.NormalizePhone(rawPhone, s.countryCode)
	if err != nil {
		s.logger.Warn("invalid phone number", "phone", rawPhone)
		return err
	}

	sid, err := s.gateway.SendSMS(ctx, to, body)
	if err != nil {
		class := Classify(err)
		s.logger.Error("sms delivery failed", "to", to, "class", string(class), "error", err.Error())
		return markClass(err, class)
	}

	s.logger.Info("sms sent", "to", to, "sid", sid)
	return nil
}
