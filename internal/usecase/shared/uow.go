package shared

import (
	"context"
	"time"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Offerings() OfferingRepository
	Availability() AvailabilityRepository
	Bookings() BookingRepository
	Approvals() ApprovalRepository
	// Savepoint runs fn in a nested transaction. A failing fn rolls back only
	// its own writes and leaves the enclosing transaction usable.
	Savepoint(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type OfferingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error)
}

// AvailabilityRepository is the ledger accessor. days come from an
// availability.Bucketer; every mutation is a single conditional statement.
type AvailabilityRepository interface {
	CheckAvailability(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error)
	// DecreaseUnits reports false and changes nothing when any day is blocked,
	// missing or short of units.
	DecreaseUnits(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error)
	IncreaseUnits(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) error
	UpsertDay(ctx context.Context, record *availability.Record) error
	FindDays(ctx context.Context, offeringID uuid.UUID, days []time.Time) ([]*availability.Record, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) error
}

type ApprovalRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*approval.Request, error)
	Save(ctx context.Context, r *approval.Request) error
	// BranchVendor returns the vendor owning the branch.
	BranchVendor(ctx context.Context, branchID uuid.UUID) (uuid.UUID, error)
}
