//go:build unit || e2e

package builder

import (
	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/domain/offering"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferingBuilder struct {
	ID           uuid.UUID
	BranchID     uuid.UUID
	ServiceID    uuid.UUID
	VendorID     uuid.UUID
	Name         string
	PricePerUnit string
	Currency     money.Currency
	PriceUnit    offering.PriceUnit
	MinDuration  *int
	MaxDuration  *int
	MaxCapacity  int
	IsAvailable  bool
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:           uuid.New(),
		BranchID:     uuid.New(),
		ServiceID:    uuid.New(),
		VendorID:     uuid.New(),
		Name:         "Hot Desk",
		PricePerUnit: "5.000",
		Currency:     "JOD",
		PriceUnit:    offering.PriceUnitHour,
		MaxCapacity:  10,
		IsAvailable:  true,
	}
}

func (o *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(o)
	return o
}

func (o *OfferingBuilder) Build() *offering.Offering {
	price, err := money.New(decimal.RequireFromString(o.PricePerUnit), o.Currency)
	if err != nil {
		panic(err)
	}
	return offering.ReconstructOffering(
		o.ID, o.BranchID, o.ServiceID, o.VendorID,
		o.Name,
		price,
		o.PriceUnit,
		o.MinDuration, o.MaxDuration,
		o.MaxCapacity,
		o.IsAvailable,
	)
}

func (o *OfferingBuilder) WithPrice(amount string, unit offering.PriceUnit) *OfferingBuilder {
	o.PricePerUnit = amount
	o.PriceUnit = unit
	return o
}

func (o *OfferingBuilder) WithDurationBounds(lo, hi *int) *OfferingBuilder {
	o.MinDuration = lo
	o.MaxDuration = hi
	return o
}

func (o *OfferingBuilder) WithCapacity(n int) *OfferingBuilder {
	o.MaxCapacity = n
	return o
}

func (o *OfferingBuilder) WithVendor(id uuid.UUID) *OfferingBuilder {
	o.VendorID = id
	return o
}

func (o *OfferingBuilder) AsUnavailable() *OfferingBuilder {
	o.IsAvailable = false
	return o
}

func IntPtr(n int) *int {
	return &n
}
