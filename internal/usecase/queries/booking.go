package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingQueries interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error)
	GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*booking.Booking, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	offerings OfferingReadStore
}

func NewBookingQueries(readStore BookingReadStore, offerings OfferingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, offerings: offerings}
}

func (q *bookingQueriesImpl) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	return q.readStore.FindByCustomer(ctx, customerID)
}

// GetByID hides bookings the actor may not see behind a not-found error.
// Customers see their own, vendors those of their offerings, admins all.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*booking.Booking, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	switch {
	case role == user.RoleAdmin, b.IsOwnedBy(actorID):
		return b, nil
	case role == user.RoleVendor:
		o, err := q.offerings.FindByID(ctx, b.OfferingID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		if o.VendorID() == actorID {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}
