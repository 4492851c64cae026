package approval

import (
	"strings"
	"time"

	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errs.NewKind("approval request already reviewed", errs.ErrInvalidTransition)
	ErrInvalidRequestType = errs.NewKind("invalid approval request type", errs.ErrValidation)
	ErrInvalidStatus      = errs.NewKind("invalid approval status", errs.ErrValidation)
	ErrEmptyNewValue      = errs.NewKind("new value is required", errs.ErrValidation)
)

type Request struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	branchID    uuid.UUID
	serviceID   *uuid.UUID
	requestType RequestType
	oldValue    *string
	newValue    string
	reason      *string
	status      Status
	createdAt   time.Time
	reviewedBy  *uuid.UUID
	reviewNotes *string
	reviewedAt  *time.Time
}

func NewRequest(
	vendorID, branchID uuid.UUID,
	serviceID *uuid.UUID,
	requestType RequestType,
	oldValue *string,
	newValue string,
	reason *string,
	now time.Time,
) (*Request, error) {
	if !requestType.IsValid() {
		return nil, ErrInvalidRequestType
	}
	if strings.TrimSpace(newValue) == "" {
		return nil, ErrEmptyNewValue
	}
	return &Request{
		id:          uuid.New(),
		vendorID:    vendorID,
		branchID:    branchID,
		serviceID:   serviceID,
		requestType: requestType,
		oldValue:    oldValue,
		newValue:    newValue,
		reason:      reason,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructRequest(
	id, vendorID, branchID uuid.UUID,
	serviceID *uuid.UUID,
	requestType RequestType,
	oldValue *string,
	newValue string,
	reason *string,
	status Status,
	createdAt time.Time,
	reviewedBy *uuid.UUID,
	reviewNotes *string,
	reviewedAt *time.Time,
) *Request {
	return &Request{
		id:          id,
		vendorID:    vendorID,
		branchID:    branchID,
		serviceID:   serviceID,
		requestType: requestType,
		oldValue:    oldValue,
		newValue:    newValue,
		reason:      reason,
		status:      status,
		createdAt:   createdAt,
		reviewedBy:  reviewedBy,
		reviewNotes: reviewNotes,
		reviewedAt:  reviewedAt,
	}
}

func (r *Request) Approve(reviewerID uuid.UUID, notes string, at time.Time) error {
	return r.review(StatusApproved, reviewerID, notes, at)
}

func (r *Request) Reject(reviewerID uuid.UUID, notes string, at time.Time) error {
	return r.review(StatusRejected, reviewerID, notes, at)
}

// review is one-shot: only a PENDING request can reach a terminal status.
func (r *Request) review(to Status, reviewerID uuid.UUID, notes string, at time.Time) error {
	if r.status != StatusPending {
		return errs.Wrapf(ErrInvalidTransition, "approval request %s: %s -> %s", r.id, r.status, to)
	}
	r.status = to
	r.reviewedBy = &reviewerID
	if notes != "" {
		r.reviewNotes = &notes
	}
	r.reviewedAt = &at
	return nil
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) VendorID() uuid.UUID      { return r.vendorID }
func (r *Request) BranchID() uuid.UUID      { return r.branchID }
func (r *Request) ServiceID() *uuid.UUID    { return r.serviceID }
func (r *Request) RequestType() RequestType { return r.requestType }
func (r *Request) OldValue() *string        { return r.oldValue }
func (r *Request) NewValue() string         { return r.newValue }
func (r *Request) Reason() *string          { return r.reason }
func (r *Request) Status() Status           { return r.status }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) ReviewedBy() *uuid.UUID   { return r.reviewedBy }
func (r *Request) ReviewNotes() *string     { return r.reviewNotes }
func (r *Request) ReviewedAt() *time.Time   { return r.reviewedAt }
