package components

import (
	"context"
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxWorker,
		NewReminderWorker,
	),
	fx.Invoke(
		startWorkers,
		seedAdmin,
	),
)

func NewOutboxWorker(p *notify.OutboxProcessor, wake *notify.WakeSignal, cfg config.Config, logger *slog.Logger) *worker.OutboxWorker {
	return worker.NewOutboxWorker(p, wake, cfg.Outbox.PollInterval, cfg.Outbox.RecoverInterval, logger)
}

func NewReminderWorker(s *notify.ReminderScanner, cfg config.Config, logger *slog.Logger) *worker.ReminderWorker {
	return worker.NewReminderWorker(s, cfg.Reminder.Interval, logger)
}

// the hook context expires after startup, so the loops get their own root context
func startWorkers(lc fx.Lifecycle, cfg config.Config, outbox *worker.OutboxWorker, reminders *worker.ReminderWorker, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Outbox.Enabled {
				outbox.Start(context.Background())
			} else {
				logger.Warn("outbox worker disabled, notifications stay queued")
			}
			if cfg.Reminder.Enabled {
				reminders.Start(context.Background())
			} else {
				logger.Info("reminder worker disabled")
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cfg.Outbox.Enabled {
				outbox.Stop()
			}
			if cfg.Reminder.Enabled {
				reminders.Stop()
			}
			return nil
		},
	})
}

func seedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if !cfg.AdminSeed.Configured() {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := auth.SeedAdmin(ctx, cfg.AdminSeed.Username, cfg.AdminSeed.Email, cfg.AdminSeed.Password)
			if err != nil {
				return err
			}
			if created {
				logger.Info("admin account created", "email", cfg.AdminSeed.Email)
			}
			return nil
		},
	})
}
