package bootstrap

import (
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
