package bootstrap

import (
	"fmt"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig refuses to start with booking settings the domain would reject on
// the first request.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := money.NewCurrency(cfg.Booking.Currency); err != nil {
		return config.Config{}, fmt.Errorf("invalid BOOKING_CURRENCY %q: %w", cfg.Booking.Currency, err)
	}
	loc, err := cfg.Booking.Location()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := availability.NewBucketer(cfg.Booking.Bucketing, loc); err != nil {
		return config.Config{}, fmt.Errorf("invalid BOOKING_BUCKETING %q: %w", cfg.Booking.Bucketing, err)
	}
	return cfg, nil
}
