//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/tests/common/builder"
	queriesmock "cowork-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferingQueriesTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	offerings    *queriesmock.MockOfferingReadStore
	availability *queriesmock.MockAvailabilityReadStore
	q            queries.OfferingQueries
	offering     *offering.Offering
	start        time.Time
}

func (s *OfferingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.offerings = queriesmock.NewMockOfferingReadStore(s.mockCtrl)
	s.availability = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)

	bucketer, err := availability.NewBucketer("start_day", time.UTC)
	s.Require().NoError(err)
	factory := booking.NewFactory(clock.NewMockClock(time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)), offering.NewDefaultPriceCalculator("JOD"))

	s.q = queries.NewOfferingQueries(s.offerings, s.availability, factory, bucketer)
	s.offering = builder.NewOfferingBuilder().
		WithPrice("10", offering.PriceUnitHour).
		WithDurationBounds(builder.IntPtr(1), builder.IntPtr(8)).
		Build()
	s.start = time.Date(2030, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func (s *OfferingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferingQueriesSuite(t *testing.T) {
	suite.Run(t, new(OfferingQueriesTestSuite))
}

func (s *OfferingQueriesTestSuite) TestQuote() {
	s.Run("bills whole hours", func() {
		s.offerings.EXPECT().FindByID(gomock.Any(), s.offering.ID()).Return(s.offering, nil)

		view, err := s.q.Quote(s.ctx, s.offering.ID(), s.start, s.start.Add(150*time.Minute))
		s.Require().NoError(err)
		s.Equal(int64(3), view.Units)
		s.Equal(offering.PriceUnitHour, view.PriceUnit)
		s.Equal("30.000", view.Total.Amount().StringFixed(3))
	})

	s.Run("zero length is too short", func() {
		s.offerings.EXPECT().FindByID(gomock.Any(), s.offering.ID()).Return(s.offering, nil)

		_, err := s.q.Quote(s.ctx, s.offering.ID(), s.start, s.start)
		s.ErrorIs(err, offering.ErrDurationTooShort)
	})

	s.Run("unknown offering", func() {
		id := uuid.New()
		s.offerings.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("offering not found", nil, infra.KindNotFound))

		_, err := s.q.Quote(s.ctx, id, s.start, s.start.Add(time.Hour))
		s.ErrorIs(err, queries.ErrOfferingNotFound)
	})

	s.Run("store failure is passed through", func() {
		boom := errors.New("boom")
		s.offerings.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := s.q.Quote(s.ctx, uuid.New(), s.start, s.start.Add(time.Hour))
		s.ErrorIs(err, boom)
	})
}

func (s *OfferingQueriesTestSuite) TestCheckAvailability() {
	day := time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC)

	s.Run("reports ledger days", func() {
		rec, err := availability.NewRecord(s.offering.ID(), day, 4, false)
		s.Require().NoError(err)

		s.offerings.EXPECT().FindByID(gomock.Any(), s.offering.ID()).Return(s.offering, nil)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), s.offering.ID(), []time.Time{day}, 2).Return(true, nil)
		s.availability.EXPECT().FindDays(gomock.Any(), s.offering.ID(), []time.Time{day}).Return([]*availability.Record{rec}, nil)

		view, err := s.q.CheckAvailability(s.ctx, s.offering.ID(), s.start, s.start.Add(time.Hour), 2)
		s.Require().NoError(err)
		s.True(view.Available)
		s.Equal(2, view.Quantity)
		s.Equal([]queries.DayView{{Date: day, AvailableUnits: 4}}, view.Days)
	})

	s.Run("switched off offering is never available", func() {
		off := builder.NewOfferingBuilder().AsUnavailable().Build()
		s.offerings.EXPECT().FindByID(gomock.Any(), off.ID()).Return(off, nil)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), off.ID(), gomock.Any(), 1).Return(true, nil)
		s.availability.EXPECT().FindDays(gomock.Any(), off.ID(), gomock.Any()).Return(nil, nil)

		view, err := s.q.CheckAvailability(s.ctx, off.ID(), s.start, s.start.Add(time.Hour), 1)
		s.Require().NoError(err)
		s.False(view.Available)
		s.Empty(view.Days)
	})

	s.Run("quantity must be positive", func() {
		_, err := s.q.CheckAvailability(s.ctx, s.offering.ID(), s.start, s.start.Add(time.Hour), 0)
		s.ErrorIs(err, queries.ErrInvalidQuantity)
	})
}
