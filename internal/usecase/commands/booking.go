package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("cowork-booking/usecase/commands")

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, customerID uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID, userID uuid.UUID, reason string) (*booking.Booking, error)
	CheckIn(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*booking.Booking, error)
	MarkNoShow(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*booking.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	bucketer *availability.Bucketer
	notifier NotificationSender
	clock    clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bucketer *availability.Bucketer,
	notifier NotificationSender,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		factory:  factory,
		bucketer: bucketer,
		notifier: notifier,
		clock:    clock,
	}
}

func (u *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, customerID uuid.UUID) (*booking.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("offering.id", in.OfferingID.String()),
		attribute.Int("booking.quantity", in.Quantity),
	)

	slot, err := booking.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	quantity, err := booking.NewQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	method, err := booking.NewPaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	days := u.bucketer.Buckets(slot.Start(), slot.End())

	var created *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := loadOffering(ctx, tx, in.OfferingID)
		if err != nil {
			return err
		}
		if err := o.EnsureBookable(); err != nil {
			return err
		}

		ok, err := tx.Availability().CheckAvailability(ctx, o.ID(), days, quantity.Int())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !ok {
			return ErrUnavailable
		}

		b, err := u.factory.CreateBooking(o, customerID, slot, quantity, method)
		if err != nil {
			return err
		}

		reserved, err := tx.Availability().DecreaseUnits(ctx, o.ID(), days, quantity.Int())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !reserved {
			// lost a race against a concurrent booking since the check
			return ErrUnavailable
		}

		if err := u.persistNew(ctx, tx, b); err != nil {
			u.compensate(ctx, tx, o, days, quantity.Int(), err)
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		slog.String("booking_id", created.ID().String()),
		slog.String("booking_number", created.Number().String()),
		slog.String("status", created.Status().String()),
		slog.Int("days", len(days)))

	if created.Status() == booking.StatusConfirmed {
		u.notifier.SendBookingConfirmation(ctx, created, customerID)
	}
	return created, nil
}

// persistNew saves inside a savepoint so a failed insert leaves the
// transaction open for the compensating increase.
func (u *bookingCommandsImpl) persistNew(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	err := tx.Savepoint(ctx, func(ctx context.Context, sp shared.Tx) error {
		return sp.Bookings().Save(ctx, b)
	})
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrBookingConflict)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

// compensate returns the reserved units. If it fails too, the rollback of the
// enclosing transaction still discards the decrement.
func (u *bookingCommandsImpl) compensate(ctx context.Context, tx shared.Tx, o *offering.Offering, days []time.Time, quantity int, cause error) {
	if err := tx.Availability().IncreaseUnits(ctx, o.ID(), days, quantity); err != nil {
		slog.ErrorContext(ctx, "failed to release reserved units",
			slog.String("offering_id", o.ID().String()),
			slog.Int("quantity", quantity),
			slog.Any("cause", cause),
			slog.Any("error", err))
		return
	}
	slog.WarnContext(ctx, "released reserved units after failed booking insert",
		slog.String("offering_id", o.ID().String()),
		slog.Int("quantity", quantity),
		slog.Any("cause", cause))
}

func (u *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, userID uuid.UUID, reason string) (*booking.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Cancel")
	defer span.End()

	var cancelled *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsOwnedBy(userID) {
			return ErrForbidden
		}
		if err := b.Cancel(reason, u.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		days := u.bucketer.Buckets(b.TimeSlot().Start(), b.TimeSlot().End())
		if err := tx.Availability().IncreaseUnits(ctx, b.OfferingID(), days, b.Quantity().Int()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cancelled = b
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled",
		slog.String("booking_id", cancelled.ID().String()),
		slog.String("user_id", userID.String()))

	u.notifier.SendBookingCancelled(ctx, cancelled, cancelled.CustomerID())
	return cancelled, nil
}

// CheckIn does not verify that vendorID owns the offering; route-level roles
// restrict who may call it.
func (u *bookingCommandsImpl) CheckIn(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*booking.Booking, error) {
	b, err := u.transition(ctx, bookingID, staffOf(actorID, role), func(b *booking.Booking) error {
		return b.CheckIn(u.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "booking checked in",
		slog.String("booking_id", bookingID.String()),
		slog.String("actor_id", actorID.String()))
	return b, nil
}

func (u *bookingCommandsImpl) MarkNoShow(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*booking.Booking, error) {
	b, err := u.transition(ctx, bookingID, staffOf(actorID, role), func(b *booking.Booking) error {
		return b.MarkNoShow(u.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "booking marked as no-show",
		slog.String("booking_id", bookingID.String()),
		slog.String("actor_id", actorID.String()))
	return b, nil
}

func (u *bookingCommandsImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := u.transition(ctx, bookingID, nil, func(b *booking.Booking) error {
		return b.Confirm(u.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "booking payment confirmed", slog.String("booking_id", bookingID.String()))

	u.notifier.SendBookingConfirmation(ctx, b, b.CustomerID())
	return b, nil
}

type authorizeFunc func(ctx context.Context, tx shared.Tx, b *booking.Booking) error

// staffOf lets admins act on any booking and vendors only on bookings of
// their own offerings.
func staffOf(actorID uuid.UUID, role user.Role) authorizeFunc {
	return func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		switch role {
		case user.RoleAdmin:
			return nil
		case user.RoleVendor:
			o, err := loadOffering(ctx, tx, b.OfferingID())
			if err != nil {
				return err
			}
			if o.VendorID() != actorID {
				return ErrForbidden
			}
			return nil
		default:
			return ErrForbidden
		}
	}
}

func (u *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, authorize authorizeFunc, apply func(*booking.Booking) error) (*booking.Booking, error) {
	var out *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(ctx, tx, b); err != nil {
				return err
			}
		}
		if err := apply(b); err != nil {
			return err
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadOffering(ctx context.Context, tx shared.Tx, id uuid.UUID) (*offering.Offering, error) {
	o, err := tx.Offerings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return o, nil
}

func loadBookingForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}
