package bootstrap

import (
	"context"

	"cowork-booking/internal/infra/messaging"
	"cowork-booking/internal/infra/notify"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewDispatcher,
	),
	fx.Invoke(func(*notify.Dispatcher) {}),
)

func NewPublisher(cfg config.Config) (messaging.Publisher, error) {
	return messaging.NewPublisher(cfg.Notify)
}

func NewDispatcher(lc fx.Lifecycle, pool *pgxpool.Pool, publisher messaging.Publisher, clk clock.Clock, cfg config.Config) *notify.Dispatcher {
	d := notify.NewDispatcher(pool, publisher, clk, cfg.Notify)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
	return d
}
