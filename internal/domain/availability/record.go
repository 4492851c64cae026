package availability

import (
	"time"

	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativeUnits  = errs.NewKind("available units cannot be negative", errs.ErrValidation)
	ErrInvalidBucket  = errs.NewKind("invalid availability bucketing policy", errs.ErrValidation)
	ErrNotEnoughUnits = errs.NewKind("not enough units available", errs.ErrUnavailable)
)

// Record is one ledger row: remaining units of an offering on a calendar day.
type Record struct {
	offeringID     uuid.UUID
	date           time.Time
	availableUnits int
	isBlocked      bool
}

func NewRecord(offeringID uuid.UUID, date time.Time, availableUnits int, isBlocked bool) (*Record, error) {
	if availableUnits < 0 {
		return nil, ErrNegativeUnits
	}
	return &Record{
		offeringID:     offeringID,
		date:           DayOf(date),
		availableUnits: availableUnits,
		isBlocked:      isBlocked,
	}, nil
}

// CanReserve is false for blocked days whatever the unit count.
func (r *Record) CanReserve(quantity int) bool {
	return !r.isBlocked && r.availableUnits >= quantity
}

func (r *Record) OfferingID() uuid.UUID { return r.offeringID }
func (r *Record) Date() time.Time       { return r.date }
func (r *Record) AvailableUnits() int   { return r.availableUnits }
func (r *Record) IsBlocked() bool       { return r.isBlocked }
