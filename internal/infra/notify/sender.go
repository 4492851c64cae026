package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
	TopicApprovalReviewed = "approval.reviewed"

	kindEmail = "email"
)

type JobWriter interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type BookingPayload struct {
	BookingID          uuid.UUID  `json:"booking_id"`
	BookingNumber      string     `json:"booking_number"`
	CustomerID         uuid.UUID  `json:"customer_id"`
	OfferingID         uuid.UUID  `json:"service_offering_id"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	Quantity           int        `json:"quantity"`
	TotalPrice         string     `json:"total_price"`
	Currency           string     `json:"currency"`
	Status             string     `json:"status"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

type ApprovalPayload struct {
	ApprovalID  uuid.UUID `json:"approval_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	RequestType string    `json:"request_type"`
	Approved    bool      `json:"approved"`
	Reason      *string   `json:"reason,omitempty"`
}

// Sender enqueues notifications in the outbox table. It never returns errors:
// a notification that cannot be queued is logged and dropped.
type Sender struct {
	jobs  JobWriter
	clock clock.Clock
}

func NewSender(jobs JobWriter, clock clock.Clock) *Sender {
	return &Sender{jobs: jobs, clock: clock}
}

func (s *Sender) SendBookingConfirmation(ctx context.Context, b *booking.Booking, customerID uuid.UUID) {
	s.enqueue(ctx, TopicBookingConfirmed, bookingPayload(b, customerID))
}

func (s *Sender) SendBookingCancelled(ctx context.Context, b *booking.Booking, customerID uuid.UUID) {
	s.enqueue(ctx, TopicBookingCancelled, bookingPayload(b, customerID))
}

func (s *Sender) SendApprovalResult(ctx context.Context, vendorID uuid.UUID, r *approval.Request, approved bool, reason *string) {
	s.enqueue(ctx, TopicApprovalReviewed, ApprovalPayload{
		ApprovalID:  r.ID(),
		VendorID:    vendorID,
		RequestType: r.RequestType().String(),
		Approved:    approved,
		Reason:      reason,
	})
}

func (s *Sender) enqueue(ctx context.Context, topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode notification", slog.String("topic", topic), slog.Any("error", err))
		return
	}
	// The request may already be finishing; the outbox write must not be
	// cancelled with it.
	ctx = context.WithoutCancel(ctx)
	if err := s.jobs.CreateJob(ctx, kindEmail, topic, body, s.clock.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to enqueue notification", slog.String("topic", topic), slog.Any("error", err))
	}
}

func bookingPayload(b *booking.Booking, customerID uuid.UUID) BookingPayload {
	return BookingPayload{
		BookingID:          b.ID(),
		BookingNumber:      b.Number().String(),
		CustomerID:         customerID,
		OfferingID:         b.OfferingID(),
		StartTime:          b.TimeSlot().Start(),
		EndTime:            b.TimeSlot().End(),
		Quantity:           b.Quantity().Int(),
		TotalPrice:         b.TotalPrice().Amount().StringFixed(3),
		Currency:           b.TotalPrice().Currency().String(),
		Status:             b.Status().String(),
		CancelledAt:        b.CancelledAt(),
		CancellationReason: b.CancellationReason(),
	}
}
