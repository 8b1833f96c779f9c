package components

import (
	"tarumbeta-server/internal/pkg/clock"
	"tarumbeta-server/internal/usecase"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewListingUseCase,
		commands.NewRentalUseCase,
		commands.NewLessonUseCase,
		commands.NewModerationUseCase,
		commands.NewMatchingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewRentalQueries,
		queries.NewLessonQueries,
		queries.NewInstructorQueries,
		queries.NewMatchingQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
