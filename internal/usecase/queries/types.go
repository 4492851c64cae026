package queries

import (
	"time"

	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferingNotFound = errs.NewKind("offering not found", errs.ErrNotFound)
	ErrBookingNotFound  = errs.NewKind("booking not visible or missing", errs.ErrNotFound)
	ErrInvalidQuantity  = errs.NewKind("quantity must be positive", errs.ErrValidation)
)

// Read models (DTO for read side)
type ApprovalView struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	VendorName  string
	BranchID    uuid.UUID
	BranchName  string
	ServiceID   *uuid.UUID
	ServiceName *string
	RequestType string
	OldValue    *string
	NewValue    string
	Reason      *string
	Status      string
	CreatedAt   time.Time
	ReviewedBy  *uuid.UUID
	ReviewNotes *string
	ReviewedAt  *time.Time
}

type QuoteView struct {
	OfferingID uuid.UUID
	Units      int64
	PriceUnit  offering.PriceUnit
	Total      money.Money
}

type DayView struct {
	Date           time.Time
	AvailableUnits int
	IsBlocked      bool
}

type AvailabilityView struct {
	OfferingID uuid.UUID
	Quantity   int
	Available  bool
	Days       []DayView
}
