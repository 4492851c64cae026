package booking

import (
	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator offering.PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator offering.PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// Quote prices a slot without building a booking.
func (f *Factory) Quote(o *offering.Offering, slot TimeSlot) (money.Money, error) {
	return f.PriceCalculator.CalculatePrice(o, slot.Start(), slot.End())
}

func (f *Factory) CreateBooking(
	o *offering.Offering,
	customerID uuid.UUID,
	slot TimeSlot,
	quantity Quantity,
	method PaymentMethod,
) (*Booking, error) {
	now := f.Clock.Now()
	if slot.StartsBefore(now) {
		return nil, ErrStartInPast
	}

	// The calculated price covers the whole booking regardless of quantity.
	price, err := f.Quote(o, slot)
	if err != nil {
		return nil, err
	}

	return NewBooking(customerID, o.ID(), slot, quantity, price, method, now)
}
