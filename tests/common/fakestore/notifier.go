//go:build unit || e2e

package fakestore

import (
	"context"
	"sync"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type Notification struct {
	Kind      string
	Recipient uuid.UUID
	SubjectID uuid.UUID
	Approved  bool
}

const (
	KindBookingConfirmed = "booking_confirmed"
	KindBookingCancelled = "booking_cancelled"
	KindApprovalResult   = "approval_result"
)

// Notifier records what the commands asked to send.
type Notifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *Notifier) add(v Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, v)
}

func (n *Notifier) SendBookingConfirmation(_ context.Context, b *booking.Booking, customerID uuid.UUID) {
	n.add(Notification{Kind: KindBookingConfirmed, Recipient: customerID, SubjectID: b.ID()})
}

func (n *Notifier) SendBookingCancelled(_ context.Context, b *booking.Booking, customerID uuid.UUID) {
	n.add(Notification{Kind: KindBookingCancelled, Recipient: customerID, SubjectID: b.ID()})
}

func (n *Notifier) SendApprovalResult(_ context.Context, vendorID uuid.UUID, r *approval.Request, approved bool, _ *string) {
	n.add(Notification{Kind: KindApprovalResult, Recipient: vendorID, SubjectID: r.ID(), Approved: approved})
}

func (n *Notifier) Sent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.sent...)
}
