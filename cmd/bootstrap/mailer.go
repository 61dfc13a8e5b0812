package bootstrap

import (
	"tavola-api/internal/infra/mail"
	"tavola-api/internal/pkg/config"
	"tavola-api/internal/usecase"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) usecase.Mailer {
	return mail.NewSendGridMailer(cfg.Mail)
}
