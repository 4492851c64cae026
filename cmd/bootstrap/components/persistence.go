package components

import (
	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/infra/notify"
	"cowork-booking/internal/infra/repository"
	"cowork-booking/internal/infra/uow"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Read stores are the same repositories bound to the pool instead of a tx.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			repository.NewOfferingRepository,
			fx.As(new(queries.OfferingReadStore)),
		),
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewApprovalRepository,
			fx.As(new(queries.ApprovalReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Notification outbox
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notify.JobWriter)),
		),
		fx.Annotate(
			notify.NewSender,
			fx.As(new(commands.NotificationSender)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
