package components

import (
	"context"
	"log/slog"

	"tavola-api/internal/infra/db"
	"tavola-api/internal/infra/memstore"
	"tavola-api/internal/infra/repository"
	"tavola-api/internal/pkg/config"
	"tavola-api/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
	),
)

// NewStores wires the persistence ports to one of the two backends. With
// DB_ENABLED=true everything runs against Postgres; otherwise the in-process
// stores are used, which lose their contents on restart.
func NewStores(lc fx.Lifecycle, cfg config.Config) (
	usecase.ReservationRepository,
	usecase.MenuRepository,
	usecase.ContentRepository,
	usecase.SettingsRepository,
	usecase.UserRepository,
	error,
) {
	if cfg.DB.Enabled {
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})

		return repository.NewReservationRepository(pool),
			repository.NewMenuRepository(pool),
			repository.NewContentRepository(pool),
			repository.NewSettingsRepository(pool),
			repository.NewUserRepository(pool),
			nil
	}

	slog.Info("database disabled, using in-process stores")

	userStore := memstore.NewUserStore()
	if err := userStore.Seed(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if cfg.Admin.Password == "" {
		slog.Warn("ADMIN_PASSWORD not set, admin login unavailable")
	}

	return memstore.NewReservationStore(),
		memstore.NewMenuStore(),
		memstore.NewContentStore(),
		memstore.NewSettingsStore(),
		userStore,
		nil
}
