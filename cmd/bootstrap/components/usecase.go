package components

import (
	"tavola-api/internal/pkg/clock"
	"tavola-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewReservationUseCase,
		usecase.NewMenuUseCase,
		usecase.NewContentUseCase,
		usecase.NewAuthUseCase,
	),
)
