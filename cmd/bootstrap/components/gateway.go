package components

import (
	"tembea/internal/gateway/mpesa"
	"tembea/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewMpesaClient,
			fx.As(new(mpesa.Gateway)),
		),
	),
)

func NewMpesaClient(cfg config.Config) *mpesa.Client {
	return mpesa.NewClient(cfg.Mpesa)
}
