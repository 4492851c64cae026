package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferingNotFound        = errs.NewKind("service offering not found", errs.ErrNotFound)
	ErrBookingNotFound         = errs.NewKind("booking not found", errs.ErrNotFound)
	ErrApprovalNotFound        = errs.NewKind("approval request not found", errs.ErrNotFound)
	ErrBranchNotFound          = errs.NewKind("branch not found", errs.ErrNotFound)
	ErrServiceNotFound         = errs.NewKind("service not found", errs.ErrNotFound)
	ErrUnavailable             = errs.NewKind("requested units are not available", errs.ErrUnavailable)
	ErrForbidden               = errs.NewKind("not allowed to act on this resource", errs.ErrForbidden)
	ErrBookingConflict         = errs.NewKind("booking number collision", errs.ErrConflict)
	ErrUnitsExceedCapacity     = errs.NewKind("available units exceed offering capacity", errs.ErrValidation)
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// NotificationSender is fire-and-forget: implementations log their own
// failures and never report them to the caller.
type NotificationSender interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking, customerID uuid.UUID)
	SendBookingCancelled(ctx context.Context, b *booking.Booking, customerID uuid.UUID)
	SendApprovalResult(ctx context.Context, vendorID uuid.UUID, r *approval.Request, approved bool, reason *string)
}

type CreateBookingInput struct {
	OfferingID    uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Quantity      int
	PaymentMethod string
}

type SubmitApprovalInput struct {
	BranchID    uuid.UUID
	ServiceID   *uuid.UUID
	RequestType string
	OldValue    *string
	NewValue    string
	Reason      *string
}

type SetAvailabilityInput struct {
	OfferingID     uuid.UUID
	Date           time.Time
	AvailableUnits int
	IsBlocked      bool
}
