package components

import (
	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/usecase"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"

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
	NewOperatingCurrency,
	NewBucketer,
	fx.Annotate(
		offering.NewDefaultPriceCalculator,
		fx.As(new(offering.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewApprovalCommands,
		commands.NewAvailabilityCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewApprovalQueries,
		queries.NewOfferingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthenticator,
	),
)

func NewOperatingCurrency(cfg config.Config) (money.Currency, error) {
	return money.NewCurrency(cfg.Booking.Currency)
}

func NewBucketer(cfg config.Config) (*availability.Bucketer, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return availability.NewBucketer(cfg.Booking.Bucketing, loc)
}
