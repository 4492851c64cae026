package money

import (
	"strings"

	"cowork-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errs.NewKind("amount cannot be negative", errs.ErrValidation)
	ErrInvalidFactor    = errs.NewKind("multiplication factor cannot be negative", errs.ErrValidation)
	ErrCurrencyMismatch = errs.NewKind("currency mismatch", errs.ErrValidation)
	ErrInvalidCurrency  = errs.NewKind("invalid currency code", errs.ErrValidation)
)

type Currency string

func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Money is an immutable non-negative amount tagged with a currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func New(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	if currency == "" {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errs.Wrapf(ErrCurrencyMismatch, "%s + %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, ErrInvalidFactor
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency}, nil
}

func (m Money) MultiplyInt(n int64) (Money, error) {
	return m.Multiply(decimal.NewFromInt(n))
}

func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + string(m.currency)
}
