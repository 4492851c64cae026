package booking

import (
	"fmt"
	"time"

	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition    = errs.NewKind("invalid booking status transition", errs.ErrInvalidTransition)
	ErrInvalidStatus        = errs.NewKind("invalid booking status", errs.ErrValidation)
	ErrInvalidPaymentMethod = errs.NewKind("invalid payment method", errs.ErrValidation)
	ErrInvalidTimeSlot      = errs.NewKind("invalid booking time slot", errs.ErrValidation)
	ErrInvalidQuantity      = errs.NewKind("quantity must be at least 1", errs.ErrValidation)
	ErrStartInPast          = errs.NewKind("booking cannot start in the past", errs.ErrValidation)
)

type Booking struct {
	id                 uuid.UUID
	number             Number
	customerID         uuid.UUID
	offeringID         uuid.UUID
	timeSlot           TimeSlot
	quantity           Quantity
	totalPrice         money.Money
	status             Status
	paymentMethod      PaymentMethod
	createdAt          time.Time
	updatedAt          time.Time
	checkInTime        *time.Time
	cancelledAt        *time.Time
	cancellationReason *string
}

func NewBooking(
	customerID, offeringID uuid.UUID,
	slot TimeSlot,
	quantity Quantity,
	totalPrice money.Money,
	method PaymentMethod,
	now time.Time,
) (*Booking, error) {
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if quantity.Int() < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Booking{
		id:            uuid.New(),
		number:        NewNumber(now),
		customerID:    customerID,
		offeringID:    offeringID,
		timeSlot:      slot,
		quantity:      quantity,
		totalPrice:    totalPrice,
		status:        InitialStatus(method),
		paymentMethod: method,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	number Number,
	customerID, offeringID uuid.UUID,
	timeSlot TimeSlot,
	quantity Quantity,
	totalPrice money.Money,
	status Status,
	method PaymentMethod,
	createdAt, updatedAt time.Time,
	checkInTime, cancelledAt *time.Time,
	cancellationReason *string,
) *Booking {
	return &Booking{
		id:                 id,
		number:             number,
		customerID:         customerID,
		offeringID:         offeringID,
		timeSlot:           timeSlot,
		quantity:           quantity,
		totalPrice:         totalPrice,
		status:             status,
		paymentMethod:      method,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		checkInTime:        checkInTime,
		cancelledAt:        cancelledAt,
		cancellationReason: cancellationReason,
	}
}

// Confirm moves a PENDING booking to CONFIRMED once payment is settled.
func (b *Booking) Confirm(at time.Time) error {
	if b.status != StatusPending {
		return b.transitionErr(StatusConfirmed)
	}
	b.status = StatusConfirmed
	b.updatedAt = at
	return nil
}

func (b *Booking) CheckIn(at time.Time) error {
	if b.status != StatusConfirmed {
		return b.transitionErr(StatusCompleted)
	}
	b.status = StatusCompleted
	b.checkInTime = &at
	b.updatedAt = at
	return nil
}

// Cancel is allowed from PENDING and CONFIRMED. An empty reason is stored as nil.
func (b *Booking) Cancel(reason string, at time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return b.transitionErr(StatusCancelled)
	}
	b.status = StatusCancelled
	b.cancelledAt = &at
	if reason != "" {
		b.cancellationReason = &reason
	}
	b.updatedAt = at
	return nil
}

func (b *Booking) MarkNoShow(at time.Time) error {
	if b.status != StatusConfirmed {
		return b.transitionErr(StatusNoShow)
	}
	b.status = StatusNoShow
	b.updatedAt = at
	return nil
}

func (b *Booking) IsOwnedBy(customerID uuid.UUID) bool {
	return b.customerID == customerID
}

// TransitionError is a refused status change. It matches ErrInvalidTransition.
type TransitionError struct {
	Number Number
	From   Status
	To     Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking %s: %s -> %s: %s", e.Number, e.From, e.To, ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

func (b *Booking) transitionErr(to Status) error {
	return &TransitionError{Number: b.number, From: b.status, To: to}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Number() Number               { return b.number }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) OfferingID() uuid.UUID        { return b.offeringID }
func (b *Booking) TimeSlot() TimeSlot           { return b.timeSlot }
func (b *Booking) Quantity() Quantity           { return b.quantity }
func (b *Booking) TotalPrice() money.Money      { return b.totalPrice }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
func (b *Booking) CheckInTime() *time.Time      { return b.checkInTime }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
