package bootstrap

import (
	"storefront-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SessionStoreModule,
	CommerceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
