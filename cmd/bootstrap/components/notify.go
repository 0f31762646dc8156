package components

import (
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/infra/cache"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/eventbus"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/gateway"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/mailer"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NotifyModule wires the outbound channels. Missing credentials yield the
// disabled sender variants instead of failing startup.
var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewEmailSender,
		NewSMSSender,
		NewTokenFormatter,
		NewDispatcher,
		NewEnqueuer,
		NewOutboxProcessor,
		NewReminderScanner,
		notify.NewResolver,
		notify.NewWakeSignal,
		NewEventPublisher,
		NewRedisClient,
		fx.Annotate(
			func(e *notify.Enqueuer) *notify.Enqueuer { return e },
			fx.As(new(commands.BookingNotifier)),
			fx.As(new(commands.ContactNotifier)),
		),
	),
)

func NewEmailSender(cfg config.Config, logger *slog.Logger) *notify.EmailSender {
	if !cfg.Mail.Configured() {
		logger.Warn("MAIL_USERNAME/MAIL_PASSWORD not set, email sender disabled")
		return notify.NewDisabledEmailSender(logger)
	}
	return notify.NewEmailSender(mailer.NewSMTPMailer(cfg.Mail), cfg.Mail.DefaultSender, cfg.Mail.Timeout, logger)
}

func NewSMSSender(cfg config.Config, logger *slog.Logger) *notify.SMSSender {
	if !cfg.SMS.Configured() {
		logger.Warn("TWILIO_SID/TWILIO_AUTH_TOKEN/TWILIO_PHONE not set, SMS sender disabled")
		return notify.NewDisabledSMSSender(logger)
	}
	return notify.NewSMSSender(gateway.NewTwilioGateway(cfg.SMS), cfg.SMS.CountryCode, logger)
}

func NewTokenFormatter(cfg config.Config) *notify.TokenFormatter {
	return notify.NewTokenFormatter(cfg.Site.DisplayTimeZone, cfg.Site.Name)
}

func NewDispatcher(resolver *notify.Resolver, email *notify.EmailSender, sms *notify.SMSSender, clk clock.Clock, cfg config.Config, logger *slog.Logger) *notify.Dispatcher {
	return notify.NewDispatcher(resolver, email, sms, clk, cfg.Outbox.RetryBackoff, logger)
}

func NewEnqueuer(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, wake *notify.WakeSignal, logger *slog.Logger) *notify.Enqueuer {
	return notify.NewEnqueuer(uow, clk, cfg.Outbox.MaxAttempts, cfg.Site.AdminEmail, wake, logger)
}

func NewOutboxProcessor(uow shared.UnitOfWork, dispatcher *notify.Dispatcher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *notify.OutboxProcessor {
	return notify.NewOutboxProcessor(uow, dispatcher, clk, cfg.Outbox.BatchSize, cfg.Outbox.Concurrency, logger)
}

func NewReminderScanner(
	bookings notify.BookingWindowReader,
	sms *notify.SMSSender,
	resolver *notify.Resolver,
	formatter *notify.TokenFormatter,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *notify.ReminderScanner {
	return notify.NewReminderScanner(bookings, sms, resolver, formatter, clk, cfg.Reminder.Lead, cfg.Reminder.Slop, logger)
}

func NewEventPublisher(cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	return eventbus.NewPublisher(cfg.AMQP, logger)
}

// NewRedisClient may return nil; rate limiting then becomes a no-op.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis, logger)
	if client != nil {
		lc.Append(fx.StopHook(client.Close))
	}
	return client
}
