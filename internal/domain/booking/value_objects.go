package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot accepts zero-length slots so that duration policy can reject
// them with a precise error.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) StartsBefore(t time.Time) bool {
	return ts.start.Before(t)
}

type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Int() int {
	return q.value
}

type Number string

// NewNumber builds BK-YYYYMMDD-XXXXXXXX from the booking date and a random id.
func NewNumber(at time.Time) Number {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return Number(fmt.Sprintf("BK-%s-%s", at.Format("20060102"), suffix))
}

func (n Number) String() string {
	return string(n)
}
