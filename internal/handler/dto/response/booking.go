package response

import (
	"time"

	"cowork-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	BookingNumber      string     `json:"bookingNumber"`
	CustomerID         uuid.UUID  `json:"customerId"`
	OfferingID         uuid.UUID  `json:"offeringId"`
	StartTime          time.Time  `json:"startTime"`
	EndTime            time.Time  `json:"endTime"`
	Quantity           int        `json:"quantity"`
	TotalPrice         string     `json:"totalPrice"`
	Currency           string     `json:"currency"`
	Status             string     `json:"status"`
	PaymentMethod      string     `json:"paymentMethod"`
	CheckInTime        *time.Time `json:"checkInTime,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID(),
		BookingNumber:      b.Number().String(),
		CustomerID:         b.CustomerID(),
		OfferingID:         b.OfferingID(),
		StartTime:          b.TimeSlot().Start(),
		EndTime:            b.TimeSlot().End(),
		Quantity:           b.Quantity().Int(),
		TotalPrice:         b.TotalPrice().Amount().StringFixed(3),
		Currency:           b.TotalPrice().Currency().String(),
		Status:             b.Status().String(),
		PaymentMethod:      b.PaymentMethod().String(),
		CheckInTime:        b.CheckInTime(),
		CancelledAt:        b.CancelledAt(),
		CancellationReason: b.CancellationReason(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}
