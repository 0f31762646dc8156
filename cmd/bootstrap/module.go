package bootstrap

import (
	"github.com/Zolbayar-hub/holisticweb/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
