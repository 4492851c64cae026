//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/handler/dto/request"
	"cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/infra/notify"
	"cowork-booking/tests/common/builder"
	"cowork-booking/tests/common/dbtest"
	"cowork-booking/tests/common/httptest"
	"cowork-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	cancelURL       = "/api/bookings/%s/cancel"
	quoteURL        = "/api/offerings/%s/quote?start=%s&end=%s"
	availabilityURL = "/api/offerings/%s/availability?start=%s&end=%s&quantity=%d"
	setAvailability = "/api/vendor/offerings/%s/availability"
	confirmURL      = "/api/admin/bookings/%s/confirm-payment"
	checkInURL      = "/api/vendor/bookings/%s/check-in"
	noShowURL       = "/api/vendor/bookings/%s/no-show"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// bookingDay is a UTC day far enough ahead that the server clock never sees it as past.
func bookingDay() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).Add(72 * time.Hour)
}

func (s *BookingSuite) createRequest(offeringID uuid.UUID, day time.Time, qty int, method string) request.CreateBookingRequest {
	return builder.NewBookingBuilder().
		WithOffering(offeringID).
		WithSlot(day.Add(9*time.Hour), day.Add(11*time.Hour)).
		WithQuantity(qty).
		WithPaymentMethod(booking.PaymentMethod(method)).
		BuildCreateRequestDTO()
}

// ================================================================================
// Quote and availability
// ================================================================================

func (s *BookingSuite) TestQuote() {
	s.Run("hourly price rounds partial hours up", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()

		url := fmt.Sprintf(quoteURL, f.OfferingID, day.Add(9*time.Hour).Format(time.RFC3339), day.Add(11*time.Hour+30*time.Minute).Format(time.RFC3339))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var got response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := response.QuoteResponse{OfferingID: f.OfferingID, Units: 3, PriceUnit: "hour", Total: "15.000", Currency: "JOD"}
		require.Empty(t, cmp.Diff(want, got))
	})

	s.Run("unknown offering is 404", func() {
		t := s.T()
		day := bookingDay()
		url := fmt.Sprintf(quoteURL, uuid.New(), day.Format(time.RFC3339), day.Add(time.Hour).Format(time.RFC3339))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *BookingSuite) TestVendorManagesLedger() {
	s.Run("owner vendor opens a day and customers see it", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		token := s.Tokens.GenerateToken(t, f.VendorID, user.RoleVendor)

		body := map[string]any{"date": day.Format(time.DateOnly), "availableUnits": 6, "isBlocked": false}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(setAvailability, f.OfferingID), body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 6, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))

		url := fmt.Sprintf(availabilityURL, f.OfferingID, day.Add(9*time.Hour).Format(time.RFC3339), day.Add(10*time.Hour).Format(time.RFC3339), 6)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var got response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.True(t, got.Available)
	})

	s.Run("another vendor is forbidden", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		token := s.Tokens.GenerateToken(t, uuid.New(), user.RoleVendor)

		body := map[string]any{"date": bookingDay().Format(time.DateOnly), "availableUnits": 1}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(setAvailability, f.OfferingID), body, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("customers cannot reach vendor routes", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		token := s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)

		body := map[string]any{"date": bookingDay().Format(time.DateOnly), "availableUnits": 1}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(setAvailability, f.OfferingID), body, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// ================================================================================
// Booking lifecycle
// ================================================================================

func (s *BookingSuite) TestBookAndCancel() {
	s.Run("cash booking confirms, cancel releases the units", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		dbtest.SetAvailability(t, s.DB, f.OfferingID, day, 5, false)

		customerID := uuid.New()
		token := s.Tokens.GenerateToken(t, customerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f.OfferingID, day, 1, "cash"), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		want := response.BookingResponse{
			CustomerID:    customerID,
			OfferingID:    f.OfferingID,
			StartTime:     day.Add(9 * time.Hour),
			EndTime:       day.Add(11 * time.Hour),
			Quantity:      1,
			TotalPrice:    "10.000",
			Currency:      "JOD",
			Status:        "CONFIRMED",
			PaymentMethod: "cash",
		}
		opts := cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "BookingNumber", "CreatedAt", "UpdatedAt")
		require.Empty(t, cmp.Diff(want, created, opts, cmpopts.EquateApproxTime(time.Second)))
		require.Regexp(t, `^BK-\d{8}-[0-9A-F]{8}$`, created.BookingNumber)
		require.Equal(t, 4, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, notify.TopicBookingConfirmed))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), map[string]any{"reason": "plans changed"}, token)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)
		require.NotNil(t, cancelled.CancellationReason)
		require.Equal(t, "plans changed", *cancelled.CancellationReason)
		require.Equal(t, 5, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, notify.TopicBookingCancelled))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "invalid booking status transition")
		require.Equal(t, 5, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))
	})

	s.Run("card booking waits for payment", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		dbtest.SetAvailability(t, s.DB, f.OfferingID, day, 2, false)
		token := s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f.OfferingID, day, 2, "card"), token)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "PENDING", created.Status)
		require.Equal(t, 0, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))
		require.Equal(t, 0, dbtest.CountNotificationJobs(t, s.DB, notify.TopicBookingConfirmed))

		admin := s.Tokens.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, created.ID), nil, admin)
		var confirmed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "CONFIRMED", confirmed.Status)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, notify.TopicBookingConfirmed))
	})

	s.Run("other customers cannot cancel or read", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		dbtest.SetAvailability(t, s.DB, f.OfferingID, day, 1, false)
		owner := s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)
		stranger := s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f.OfferingID, day, 1, "cash"), owner)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, stranger)
		require.Equal(t, http.StatusForbidden, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, stranger)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, 0, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))
	})

	s.Run("blocked day and missing day are unavailable", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		dbtest.SetAvailability(t, s.DB, f.OfferingID, day, 5, true)
		token := s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f.OfferingID, day, 1, "cash"), token)
		require.Equal(t, http.StatusConflict, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f.OfferingID, day.Add(24*time.Hour), 1, "cash"), token)
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, 0, dbtest.CountBookings(t, s.DB, f.OfferingID))
	})
}

func (s *BookingSuite) TestStaffActsOnOwnOfferingsOnly() {
	s.Run("another vendor cannot check in, mark no-show or read", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		dbtest.SetAvailability(t, s.DB, f.OfferingID, day, 2, false)
		customer := s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.createRequest(f.OfferingID, day, 1, "cash"), customer)
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		other := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		stranger := s.Tokens.GenerateToken(t, other.VendorID, user.RoleVendor)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(checkInURL, created.ID), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "not allowed")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(noShowURL, created.ID), nil, stranger)
		require.Equal(t, http.StatusForbidden, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, stranger)
		require.Equal(t, http.StatusNotFound, w.Code)

		owner := s.Tokens.GenerateToken(t, f.VendorID, user.RoleVendor)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, owner)
		require.Equal(t, http.StatusOK, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(checkInURL, created.ID), nil, owner)
		var checkedIn response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &checkedIn)
		require.Equal(t, "COMPLETED", checkedIn.Status)
	})
}

// ================================================================================
// Concurrency
// ================================================================================

func (s *BookingSuite) TestConcurrentBookingsNeverOversell() {
	s.Run("ten customers race for three units", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		day := bookingDay()
		dbtest.SetAvailability(t, s.DB, f.OfferingID, day, 3, false)

		const racers = 10
		tokens := make([]string, racers)
		for i := range tokens {
			tokens[i] = s.Tokens.GenerateToken(t, uuid.New(), user.RoleCustomer)
		}
		reqBody := s.createRequest(f.OfferingID, day, 1, "cash")

		codes := make([]int, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, tokens[i]).Code
			}()
		}
		close(start)
		wg.Wait()

		var created, conflicted int
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 3, created, "codes: %v", codes)
		require.Equal(t, racers-3, conflicted, "codes: %v", codes)
		require.Equal(t, 0, dbtest.GetAvailableUnits(t, s.DB, f.OfferingID, day))
		require.Equal(t, 3, dbtest.CountBookings(t, s.DB, f.OfferingID))
	})
}
