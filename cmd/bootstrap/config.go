package bootstrap

import (
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
