package queries

//go:generate mockgen -source=offering.go -destination=../../../tests/mock/queries/offering.go -package=queriesmock

import (
	"context"
	"time"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/infra"

	"github.com/google/uuid"
)

type OfferingQueries interface {
	// Quote runs the price calculator for an offering and interval.
	Quote(ctx context.Context, offeringID uuid.UUID, start, end time.Time) (*QuoteView, error)
	CheckAvailability(ctx context.Context, offeringID uuid.UUID, start, end time.Time, quantity int) (*AvailabilityView, error)
}

type OfferingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error)
}

type AvailabilityReadStore interface {
	CheckAvailability(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error)
	FindDays(ctx context.Context, offeringID uuid.UUID, days []time.Time) ([]*availability.Record, error)
}

type offeringQueriesImpl struct {
	offerings    OfferingReadStore
	availability AvailabilityReadStore
	factory      *booking.Factory
	bucketer     *availability.Bucketer
}

func NewOfferingQueries(
	offerings OfferingReadStore,
	availabilityStore AvailabilityReadStore,
	factory *booking.Factory,
	bucketer *availability.Bucketer,
) OfferingQueries {
	return &offeringQueriesImpl{
		offerings:    offerings,
		availability: availabilityStore,
		factory:      factory,
		bucketer:     bucketer,
	}
}

func (q *offeringQueriesImpl) Quote(ctx context.Context, offeringID uuid.UUID, start, end time.Time) (*QuoteView, error) {
	o, err := q.findOffering(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	total, err := q.factory.Quote(o, slot)
	if err != nil {
		return nil, err
	}
	units, err := offering.DurationUnits(o.PriceUnit(), start, end)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		OfferingID: o.ID(),
		Units:      units,
		PriceUnit:  o.PriceUnit(),
		Total:      total,
	}, nil
}

func (q *offeringQueriesImpl) CheckAvailability(ctx context.Context, offeringID uuid.UUID, start, end time.Time, quantity int) (*AvailabilityView, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	o, err := q.findOffering(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	days := q.bucketer.Buckets(start, end)
	ok, err := q.availability.CheckAvailability(ctx, o.ID(), days, quantity)
	if err != nil {
		return nil, err
	}
	records, err := q.availability.FindDays(ctx, o.ID(), days)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		OfferingID: o.ID(),
		Quantity:   quantity,
		Available:  ok && o.IsAvailable(),
		Days:       make([]DayView, 0, len(records)),
	}
	for _, r := range records {
		view.Days = append(view.Days, DayView{
			Date:           r.Date(),
			AvailableUnits: r.AvailableUnits(),
			IsBlocked:      r.IsBlocked(),
		})
	}
	return view, nil
}

func (q *offeringQueriesImpl) findOffering(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	o, err := q.offerings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return o, nil
}
