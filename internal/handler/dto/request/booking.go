package request

import (
	"time"

	"cowork-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	OfferingID    uuid.UUID `json:"offeringId" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	Quantity      int       `json:"quantity" binding:"required,min=1,max=500"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,paymentmethod"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		OfferingID:    r.OfferingID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Quantity:      r.Quantity,
		PaymentMethod: r.PaymentMethod,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
