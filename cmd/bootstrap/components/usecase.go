package components

import (
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"

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
		commands.NewBookingCommands,
		commands.NewServiceCommands,
		commands.NewTemplateCommands,
		commands.NewTestimonialCommands,
		commands.NewSettingCommands,
		commands.NewContactCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewServiceQueries,
		queries.NewTemplateQueries,
		queries.NewTestimonialQueries,
		queries.NewSettingQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
