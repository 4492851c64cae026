package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	stripeSignatureHeader  = "Stripe-Signature"
	stripeMaxPayloadBytes  = 1 << 20
	eventPaymentSucceeded  = "payment_intent.succeeded"
	bookingIDMetadataField = "booking_id"
)

var errWebhookNotConfigured = errors.New("stripe webhook secret not configured")

// StripeWebhookHandler confirms card bookings once Stripe reports the payment.
// The signature is the only authentication on this route.
type StripeWebhookHandler struct {
	cmds      commands.BookingCommands
	secret    string
	tolerance time.Duration
}

func NewStripeWebhookHandler(cmds commands.BookingCommands, cfg config.Config) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		cmds:      cmds,
		secret:    strings.TrimSpace(cfg.Stripe.WebhookSecret),
		tolerance: webhook.DefaultTolerance,
	}
}

// @Summary Stripe webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	if h.secret == "" {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, errWebhookNotConfigured, "Stripe webhook not configured", nil)
		return
	}
	sig := c.GetHeader(stripeSignatureHeader)
	if strings.TrimSpace(sig) == "" {
		httperr.BadRequest(c, errors.New("missing signature"), "Missing Stripe-Signature header")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, stripeMaxPayloadBytes))
	if err != nil {
		httperr.BadRequest(c, err, "Failed to read request body")
		return
	}

	evt, err := webhook.ConstructEventWithOptions(body, sig, h.secret, webhook.ConstructEventOptions{
		Tolerance:                h.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		httperr.BadRequest(c, err, "Invalid signature")
		return
	}

	log := slog.With("provider_event_id", evt.ID, "event_type", string(evt.Type))
	if string(evt.Type) != eventPaymentSucceeded {
		log.Debug("stripe event ignored")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(evt.Data.Raw, &intent); err != nil {
		httperr.BadRequest(c, err, "Invalid payment intent payload")
		return
	}
	bookingID, err := uuid.Parse(strings.TrimSpace(intent.Metadata[bookingIDMetadataField]))
	if err != nil {
		log.Warn("stripe: payment intent without booking_id metadata", "payment_intent", intent.ID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	_, err = h.cmds.ConfirmPayment(c.Request.Context(), bookingID)
	switch {
	case err == nil:
		log.Info("booking payment confirmed", "booking_id", bookingID)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errs.Is(err, errs.ErrInvalidTransition):
		var te *booking.TransitionError
		if errs.As(err, &te) && te.From == booking.StatusConfirmed {
			log.Info("stripe payment for confirmed booking acknowledged", "booking_id", bookingID)
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		// Money was taken for a booking that can no longer be confirmed.
		status := "unknown"
		if te != nil {
			status = te.From.String()
		}
		log.Warn("stripe payment for closed booking needs a refund",
			"booking_id", bookingID, "booking_status", status, "payment_intent", intent.ID)
		c.JSON(http.StatusOK, gin.H{"status": "refund_required"})
	case errs.Is(err, errs.ErrNotFound):
		log.Warn("stripe payment for unknown booking", "booking_id", bookingID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	default:
		httperr.Abort(c, err)
	}
}
