package commands

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/commands/availability.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	SetDay(ctx context.Context, actorID uuid.UUID, role user.Role, in SetAvailabilityInput) (*availability.Record, error)
}

type availabilityCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityCommands(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow}
}

// SetDay overwrites one ledger day. Vendors may only manage their own offerings.
func (u *availabilityCommandsImpl) SetDay(ctx context.Context, actorID uuid.UUID, role user.Role, in SetAvailabilityInput) (*availability.Record, error) {
	rec, err := availability.NewRecord(in.OfferingID, in.Date, in.AvailableUnits, in.IsBlocked)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := loadOffering(ctx, tx, in.OfferingID)
		if err != nil {
			return err
		}
		if role == user.RoleVendor && o.VendorID() != actorID {
			return ErrForbidden
		}
		if in.AvailableUnits > o.MaxCapacity() {
			return errs.Wrapf(ErrUnitsExceedCapacity, "%d > %d", in.AvailableUnits, o.MaxCapacity())
		}
		if err := tx.Availability().UpsertDay(ctx, rec); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "availability updated",
		slog.String("offering_id", in.OfferingID.String()),
		slog.String("date", rec.Date().Format("2006-01-02")),
		slog.Int("units", rec.AvailableUnits()),
		slog.Bool("blocked", rec.IsBlocked()))
	return rec, nil
}
