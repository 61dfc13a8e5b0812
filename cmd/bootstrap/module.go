package bootstrap

import (
	"tavola-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	MailerModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
