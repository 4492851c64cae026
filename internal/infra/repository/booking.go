package repository

import (
	"context"
	"time"

	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `
id, booking_number, customer_id, service_offering_id, start_time, end_time,
quantity, total_price, currency, status, payment_method, check_in_time,
cancelled_at, cancellation_reason, created_at, updated_at`

const findBookingByID = `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

const findBookingByIDForUpdate = findBookingByID + ` FOR UPDATE`

const findBookingsByCustomer = `SELECT` + bookingColumns + `
FROM bookings
WHERE customer_id = $1
ORDER BY created_at DESC, id DESC`

const saveBooking = `
INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (id) DO UPDATE
SET status = EXCLUDED.status,
    check_in_time = EXCLUDED.check_in_time,
    cancelled_at = EXCLUDED.cancelled_at,
    cancellation_reason = EXCLUDED.cancellation_reason,
    updated_at = EXCLUDED.updated_at`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, findBookingByID, id)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, findBookingByIDForUpdate, id)
}

func (r *BookingRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, findBookingsByCustomer, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by customer", err)
	}
	defer rows.Close()

	out := make([]*booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}

// Save inserts a new booking or persists the mutable lifecycle fields of an
// existing one.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, saveBooking,
		b.ID(),
		b.Number().String(),
		b.CustomerID(),
		b.OfferingID(),
		b.TimeSlot().Start(),
		b.TimeSlot().End(),
		b.Quantity().Int(),
		pgconv.DecimalToNumeric(b.TotalPrice().Amount()),
		b.TotalPrice().Currency().String(),
		b.Status().String(),
		b.PaymentMethod().String(),
		pgconv.TimePtrToPgtype(b.CheckInTime()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.StringPtrToPgtype(b.CancellationReason()),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save booking", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, customerID, offeringID uuid.UUID
		number                     string
		start, end                 time.Time
		quantity                   int
		total                      pgtype.Numeric
		currency, status, method   string
		checkIn, cancelledAt       pgtype.Timestamptz
		reason                     pgtype.Text
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(
		&id, &number, &customerID, &offeringID, &start, &end,
		&quantity, &total, &currency, &status, &method, &checkIn,
		&cancelledAt, &reason, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	amount, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, err
	}
	cur, err := money.NewCurrency(currency)
	if err != nil {
		return nil, err
	}
	price, err := money.New(amount, cur)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}
	qty, err := booking.NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}
	pm, err := booking.NewPaymentMethod(method)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id,
		booking.Number(number),
		customerID, offeringID,
		slot,
		qty,
		price,
		st,
		pm,
		createdAt, updatedAt,
		pgconv.TimePtrFromPgtype(checkIn),
		pgconv.TimePtrFromPgtype(cancelledAt),
		pgconv.StringPtrFromPgtype(reason),
	), nil
}
