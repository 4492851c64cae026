//go:build e2e

package ledger_test

import (
	"context"
	"testing"
	"time"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/infra/repository"
	"cowork-booking/internal/infra/uow"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/tests/common/dbtest"
	"cowork-booking/tests/common/fakestore"
	"cowork-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	now    = time.Date(2031, time.May, 1, 9, 0, 0, 0, time.UTC)
	dayOne = time.Date(2031, time.June, 10, 0, 0, 0, 0, time.UTC)
	dayTwo = dayOne.AddDate(0, 0, 1)
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) eachDayCommands() commands.BookingCommands {
	bucketer, err := availability.NewBucketer(string(availability.PolicyEachDay), time.UTC)
	s.Require().NoError(err)
	clk := clock.NewMockClock(now)
	factory := booking.NewFactory(clk, offering.NewDefaultPriceCalculator("JOD"))
	return commands.NewBookingCommands(uow.NewPostgresUoW(s.DB), factory, bucketer, &fakestore.Notifier{}, clk)
}

// overnight spans dayOne 20:00 to dayTwo 02:00.
func overnight(offeringID uuid.UUID, quantity int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		OfferingID:    offeringID,
		StartTime:     dayOne.Add(20 * time.Hour),
		EndTime:       dayTwo.Add(2 * time.Hour),
		Quantity:      quantity,
		PaymentMethod: booking.PaymentCash.String(),
	}
}

func (s *LedgerSuite) TestEachDayBooking() {
	ctx := context.Background()

	s.Run("one short day leaves every day untouched", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayOne, 5, false)
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayTwo, 1, false)

		_, err := s.eachDayCommands().Create(ctx, overnight(f.OfferingID, 2), uuid.New())

		require.True(t, errs.Is(err, commands.ErrUnavailable), "got %v", err)
		require.Equal(t, 5, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
		require.Equal(t, 1, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayTwo))
		require.Zero(t, dbtest.CountBookings(t, s.DB, f.OfferingID))
	})

	s.Run("a blocked day refuses the whole booking", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayOne, 5, false)
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayTwo, 5, true)

		_, err := s.eachDayCommands().Create(ctx, overnight(f.OfferingID, 1), uuid.New())

		require.True(t, errs.Is(err, commands.ErrUnavailable), "got %v", err)
		require.Equal(t, 5, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
	})

	s.Run("every touched day is consumed and restored on cancel", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayOne, 5, false)
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayTwo, 3, false)
		customer := uuid.New()
		cmds := s.eachDayCommands()

		b, err := cmds.Create(ctx, overnight(f.OfferingID, 2), customer)
		require.NoError(t, err)
		require.Equal(t, 3, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
		require.Equal(t, 1, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayTwo))

		_, err = cmds.Cancel(ctx, b.ID(), customer, "plans changed")
		require.NoError(t, err)
		require.Equal(t, 5, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
		require.Equal(t, 3, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayTwo))
	})
}

func (s *LedgerSuite) TestAvailabilityRepository() {
	ctx := context.Background()

	s.Run("decrease is all or nothing across days", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayOne, 4, false)
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayTwo, 2, false)
		repo := repository.NewAvailabilityRepository(s.DB)

		ok, err := repo.DecreaseUnits(ctx, f.OfferingID, []time.Time{dayOne, dayTwo}, 3)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 4, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
		require.Equal(t, 2, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayTwo))

		// a day with no ledger row counts as short
		ok, err = repo.DecreaseUnits(ctx, f.OfferingID, []time.Time{dayOne, dayTwo.AddDate(0, 0, 1)}, 1)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 4, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))

		ok, err = repo.DecreaseUnits(ctx, f.OfferingID, []time.Time{dayOne, dayTwo}, 2)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
		require.Equal(t, 0, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayTwo))
	})

	s.Run("increase never exceeds max capacity", func() {
		t := s.T()
		params := dbtest.DefaultOfferingParams()
		params.MaxCapacity = 10
		f := dbtest.CreateOffering(t, s.DB, params)
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayOne, 9, false)
		dbtest.SetAvailability(t, s.DB, f.OfferingID, dayTwo, 4, false)
		repo := repository.NewAvailabilityRepository(s.DB)

		err := repo.IncreaseUnits(ctx, f.OfferingID, []time.Time{dayOne, dayTwo}, 3)
		require.NoError(t, err)
		require.Equal(t, 10, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayOne))
		require.Equal(t, 7, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, dayTwo))
	})
}
