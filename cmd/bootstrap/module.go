package bootstrap

import (
	"tembea/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.SweeperModule,
)
