package offering

import (
	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriceUnit    = errs.NewKind("invalid price unit", errs.ErrValidation)
	ErrOfferingUnavailable = errs.NewKind("service offering is not available for booking", errs.ErrUnavailable)
)

type PriceUnit string

const (
	PriceUnitHour PriceUnit = "hour"
	PriceUnitDay  PriceUnit = "day"
)

func (u PriceUnit) String() string {
	return string(u)
}

func (u PriceUnit) IsValid() bool {
	switch u {
	case PriceUnitHour, PriceUnitDay:
		return true
	default:
		return false
	}
}

func NewPriceUnit(s string) (PriceUnit, error) {
	u := PriceUnit(s)
	if !u.IsValid() {
		return "", ErrInvalidPriceUnit
	}
	return u, nil
}

// Offering is a bookable service at a branch. Rows are owned by the catalogue,
// this package only reads them.
type Offering struct {
	id           uuid.UUID
	branchID     uuid.UUID
	serviceID    uuid.UUID
	vendorID     uuid.UUID
	name         string
	pricePerUnit money.Money
	priceUnit    PriceUnit
	minDuration  *int
	maxDuration  *int
	maxCapacity  int
	isAvailable  bool
}

func ReconstructOffering(
	id, branchID, serviceID, vendorID uuid.UUID,
	name string,
	pricePerUnit money.Money,
	priceUnit PriceUnit,
	minDuration, maxDuration *int,
	maxCapacity int,
	isAvailable bool,
) *Offering {
	return &Offering{
		id:           id,
		branchID:     branchID,
		serviceID:    serviceID,
		vendorID:     vendorID,
		name:         name,
		pricePerUnit: pricePerUnit,
		priceUnit:    priceUnit,
		minDuration:  minDuration,
		maxDuration:  maxDuration,
		maxCapacity:  maxCapacity,
		isAvailable:  isAvailable,
	}
}

// EnsureBookable fails when the offering has been switched off.
func (o *Offering) EnsureBookable() error {
	if !o.isAvailable {
		return ErrOfferingUnavailable
	}
	return nil
}

func (o *Offering) ID() uuid.UUID             { return o.id }
func (o *Offering) BranchID() uuid.UUID       { return o.branchID }
func (o *Offering) ServiceID() uuid.UUID      { return o.serviceID }
func (o *Offering) VendorID() uuid.UUID       { return o.vendorID }
func (o *Offering) Name() string              { return o.name }
func (o *Offering) PricePerUnit() money.Money { return o.pricePerUnit }
func (o *Offering) PriceUnit() PriceUnit      { return o.priceUnit }
func (o *Offering) MinDuration() *int         { return o.minDuration }
func (o *Offering) MaxDuration() *int         { return o.maxDuration }
func (o *Offering) MaxCapacity() int          { return o.maxCapacity }
func (o *Offering) IsAvailable() bool         { return o.isAvailable }
