package bootstrap

import (
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		newLogConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}

func newLogConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}
