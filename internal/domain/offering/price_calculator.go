package offering

import (
	"time"

	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/pkg/errs"
)

var (
	ErrInvalidTimeRange = errs.NewKind("end time must not be before start time", errs.ErrValidation)
	ErrDurationTooShort = errs.NewKind("booking duration is shorter than the minimum", errs.ErrValidation)
	ErrDurationTooLong  = errs.NewKind("booking duration exceeds the maximum", errs.ErrValidation)
	ErrUnknownPriceUnit = errs.NewKind("offering has an unknown price unit", errs.ErrValidation)
)

const day = 24 * time.Hour

type PriceCalculator interface {
	CalculatePrice(o *Offering, start, end time.Time) (money.Money, error)
}

// DefaultPriceCalculator bills whole units. Any partial unit is charged in full.
type DefaultPriceCalculator struct {
	currency money.Currency
}

func NewDefaultPriceCalculator(operatingCurrency money.Currency) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{currency: operatingCurrency}
}

func (pc *DefaultPriceCalculator) CalculatePrice(o *Offering, start, end time.Time) (money.Money, error) {
	units, err := DurationUnits(o.PriceUnit(), start, end)
	if err != nil {
		return money.Money{}, err
	}

	if lo := o.MinDuration(); lo != nil && units < int64(*lo) {
		return money.Money{}, errs.Wrapf(ErrDurationTooShort, "%d %s < %d", units, o.PriceUnit(), *lo)
	}
	if hi := o.MaxDuration(); hi != nil && units > int64(*hi) {
		return money.Money{}, errs.Wrapf(ErrDurationTooLong, "%d %s > %d", units, o.PriceUnit(), *hi)
	}

	base := o.PricePerUnit()
	if pc.currency != "" && base.Currency() != pc.currency {
		return money.Money{}, errs.Wrapf(money.ErrCurrencyMismatch,
			"offering priced in %s, operating currency is %s", base.Currency(), pc.currency)
	}

	return base.MultiplyInt(units)
}

// DurationUnits returns ceil((end-start)/unit).
func DurationUnits(unit PriceUnit, start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, ErrInvalidTimeRange
	}

	var size time.Duration
	switch unit {
	case PriceUnitHour:
		size = time.Hour
	case PriceUnitDay:
		size = day
	default:
		return 0, ErrUnknownPriceUnit
	}

	// Sub saturates at the largest Duration
	d := end.Sub(start)
	units := d / size
	if d%size != 0 {
		units++
	}
	return int64(units), nil
}
