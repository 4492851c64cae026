package availability

import (
	"time"

	"github.com/jinzhu/now"
)

// Policy decides which ledger days an interval consumes.
type Policy string

const (
	// PolicyStartDay keys the whole interval on the day it starts.
	PolicyStartDay Policy = "start_day"
	// PolicyEachDay consumes one unit per calendar day touched by [start,end).
	PolicyEachDay Policy = "each_day"
)

func (p Policy) IsValid() bool {
	return p == PolicyStartDay || p == PolicyEachDay
}

type Bucketer struct {
	policy Policy
	loc    *time.Location
}

func NewBucketer(policy string, loc *time.Location) (*Bucketer, error) {
	p := Policy(policy)
	if !p.IsValid() {
		return nil, ErrInvalidBucket
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Bucketer{policy: p, loc: loc}, nil
}

func (b *Bucketer) Policy() Policy { return b.policy }

// Buckets returns the ledger dates for [start,end) in ascending order. It never
// returns an empty slice.
func (b *Bucketer) Buckets(start, end time.Time) []time.Time {
	first := DayOf(start.In(b.loc))
	if b.policy == PolicyStartDay || !end.After(start) {
		return []time.Time{first}
	}

	endLocal := end.In(b.loc)
	lastStart := now.With(endLocal).BeginningOfDay()
	if lastStart.Equal(endLocal) {
		// end is exclusive, so a midnight end does not touch that day
		lastStart = lastStart.AddDate(0, 0, -1)
	}
	last := DayOf(lastStart)

	days := []time.Time{first}
	for d := first.AddDate(0, 0, 1); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DayOf truncates t to its calendar day in t's own location and returns that
// date at UTC midnight, the shape stored in DATE columns.
func DayOf(t time.Time) time.Time {
	y, m, d := now.With(t).BeginningOfDay().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
