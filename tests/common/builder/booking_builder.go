//go:build unit || e2e

package builder

import (
	"time"

	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/money"
	reqdto "cowork-booking/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	OfferingID    uuid.UUID
	Start         time.Time
	End           time.Time
	Quantity      int
	TotalPrice    string
	Currency      money.Currency
	Status        booking.Status
	PaymentMethod booking.PaymentMethod
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2030, time.March, 10, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		OfferingID:    uuid.New(),
		Start:         start,
		End:           start.Add(2 * time.Hour),
		Quantity:      1,
		TotalPrice:    "10.000",
		Currency:      "JOD",
		Status:        booking.StatusConfirmed,
		PaymentMethod: booking.PaymentCash,
		CreatedAt:     start.Add(-24 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithCustomer(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithOffering(id uuid.UUID) *BookingBuilder {
	b.OfferingID = id
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithQuantity(n int) *BookingBuilder {
	b.Quantity = n
	return b
}

func (b *BookingBuilder) WithPaymentMethod(m booking.PaymentMethod) *BookingBuilder {
	b.PaymentMethod = m
	return b
}

// BuildDomain reconstructs a persisted booking in the configured status.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	qty, err := booking.NewQuantity(b.Quantity)
	if err != nil {
		panic(err)
	}
	price, err := money.New(decimal.RequireFromString(b.TotalPrice), b.Currency)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID,
		booking.NewNumber(b.CreatedAt),
		b.CustomerID, b.OfferingID,
		slot,
		qty,
		price,
		b.Status,
		b.PaymentMethod,
		b.CreatedAt, b.CreatedAt,
		nil, nil, nil,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		OfferingID:    b.OfferingID,
		StartTime:     b.Start,
		EndTime:       b.End,
		Quantity:      b.Quantity,
		PaymentMethod: b.PaymentMethod.String(),
	}
}
