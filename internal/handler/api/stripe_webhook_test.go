//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/handler/api"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/tests/common/builder"
	"cowork-booking/tests/common/httptest"
	commandsmock "cowork-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test_secret"

type StripeWebhookTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
}

func (s *StripeWebhookTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.router = s.newRouter(testWebhookSecret)
}

func (s *StripeWebhookTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStripeWebhookSuite(t *testing.T) {
	suite.Run(t, new(StripeWebhookTestSuite))
}

func (s *StripeWebhookTestSuite) newRouter(secret string) *gin.Engine {
	var cfg config.Config
	cfg.Stripe.WebhookSecret = secret
	r := gin.New()
	r.POST("/webhooks/stripe", api.NewStripeWebhookHandler(s.mockCommands, cfg).Handle)
	return r
}

func paymentEvent(eventType, bookingID string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": "evt_test_1",
  "object": "event",
  "type": %q,
  "data": {
    "object": {
      "id": "pi_test_1",
      "object": "payment_intent",
      "status": "succeeded",
      "metadata": {"booking_id": %q}
    }
  }
}`, eventType, bookingID))
}

func (s *StripeWebhookTestSuite) send(payload []byte, secret string) (int, string) {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", signed.Payload,
		map[string]string{"Stripe-Signature": signed.Header, "Content-Type": "application/json"})
	return rec.Code, rec.Body.String()
}

func (s *StripeWebhookTestSuite) TestPaymentSucceeded() {
	bookingID := uuid.New()
	confirmed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = bookingID }).BuildDomain()
	refusedFrom := func(from booking.Status) error {
		return &booking.TransitionError{Number: confirmed.Number(), From: from, To: booking.StatusConfirmed}
	}

	cases := []struct {
		name         string
		result       error
		expectCode   int
		expectStatus string
		expectLevel  string
	}{
		{name: "pending booking is confirmed", expectCode: http.StatusOK, expectStatus: `"ok"`, expectLevel: "INFO"},
		{name: "replayed event is acknowledged", result: refusedFrom(booking.StatusConfirmed), expectCode: http.StatusOK, expectStatus: `"duplicate"`, expectLevel: "INFO"},
		{name: "cancelled booking needs a refund", result: refusedFrom(booking.StatusCancelled), expectCode: http.StatusOK, expectStatus: `"refund_required"`, expectLevel: "WARN"},
		{name: "completed booking needs a refund", result: refusedFrom(booking.StatusCompleted), expectCode: http.StatusOK, expectStatus: `"refund_required"`, expectLevel: "WARN"},
		{name: "no-show booking needs a refund", result: refusedFrom(booking.StatusNoShow), expectCode: http.StatusOK, expectStatus: `"refund_required"`, expectLevel: "WARN"},
		{name: "unknown booking is acknowledged", result: commands.ErrBookingNotFound, expectCode: http.StatusOK, expectStatus: `"ignored"`, expectLevel: "WARN"},
		{name: "storage failure is retried", result: errors.New("db down"), expectCode: http.StatusInternalServerError, expectStatus: "Internal server error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			var logs bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
			defer slog.SetDefault(prev)

			var ret *booking.Booking
			if tc.result == nil {
				ret = confirmed
			}
			s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), bookingID).Return(ret, tc.result).Times(1)

			code, body := s.send(paymentEvent("payment_intent.succeeded", bookingID.String()), testWebhookSecret)
			s.Equal(tc.expectCode, code, body)
			s.Contains(body, tc.expectStatus)
			if tc.expectLevel != "" {
				s.Contains(logs.String(), `"level":"`+tc.expectLevel+`"`)
			}
			if tc.expectLevel == "INFO" {
				s.NotContains(logs.String(), `"level":"WARN"`)
			}
		})
	}
}

func (s *StripeWebhookTestSuite) TestIgnoredEvents() {
	s.Run("other event types", func() {
		code, body := s.send(paymentEvent("payment_intent.payment_failed", uuid.NewString()), testWebhookSecret)
		s.Equal(http.StatusOK, code)
		s.JSONEq(`{"status":"ignored"}`, body)
	})

	s.Run("intent without booking metadata", func() {
		code, body := s.send(paymentEvent("payment_intent.succeeded", "not-a-uuid"), testWebhookSecret)
		s.Equal(http.StatusOK, code)
		s.JSONEq(`{"status":"ignored"}`, body)
	})
}

func (s *StripeWebhookTestSuite) TestRejectedRequests() {
	payload := paymentEvent("payment_intent.succeeded", uuid.NewString())

	s.Run("wrong secret", func() {
		code, body := s.send(payload, "whsec_other")
		s.Equal(http.StatusBadRequest, code)
		s.Contains(body, "Invalid signature")
	})

	s.Run("missing signature header", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", payload, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing Stripe-Signature header")
	})

	s.Run("stale timestamp", func() {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    testWebhookSecret,
			Timestamp: time.Now().Add(-time.Hour),
		})
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", signed.Payload,
			map[string]string{"Stripe-Signature": signed.Header})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("secret not configured", func() {
		s.router = s.newRouter("  ")
		code, body := s.send(payload, testWebhookSecret)
		s.Equal(http.StatusServiceUnavailable, code)
		s.Contains(body, "not configured")
	})
}
