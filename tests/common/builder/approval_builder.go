//go:build unit || e2e

package builder

import (
	"time"

	"cowork-booking/internal/domain/approval"
	reqdto "cowork-booking/internal/handler/dto/request"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApprovalBuilder struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	BranchID    uuid.UUID
	ServiceID   *uuid.UUID
	RequestType approval.RequestType
	OldValue    *string
	NewValue    string
	Reason      *string
	Status      approval.Status
	CreatedAt   time.Time
}

func NewApprovalBuilder() *ApprovalBuilder {
	old := "5.000"
	reason := "market adjustment"
	return &ApprovalBuilder{
		ID:          uuid.New(),
		VendorID:    uuid.New(),
		BranchID:    uuid.New(),
		RequestType: approval.TypePriceChange,
		OldValue:    &old,
		NewValue:    "6.000",
		Reason:      &reason,
		Status:      approval.StatusPending,
		CreatedAt:   time.Date(2030, time.January, 5, 8, 0, 0, 0, time.UTC),
	}
}

func (a *ApprovalBuilder) With(mutate func(*ApprovalBuilder)) *ApprovalBuilder {
	mutate(a)
	return a
}

func (a *ApprovalBuilder) WithStatus(s approval.Status) *ApprovalBuilder {
	a.Status = s
	return a
}

func (a *ApprovalBuilder) WithVendor(id uuid.UUID) *ApprovalBuilder {
	a.VendorID = id
	return a
}

func (a *ApprovalBuilder) BuildDomain() *approval.Request {
	return approval.ReconstructRequest(
		a.ID, a.VendorID, a.BranchID,
		a.ServiceID,
		a.RequestType,
		a.OldValue,
		a.NewValue,
		a.Reason,
		a.Status,
		a.CreatedAt,
		nil, nil, nil,
	)
}

func (a *ApprovalBuilder) BuildView() *queries.ApprovalView {
	return &queries.ApprovalView{
		ID:          a.ID,
		VendorID:    a.VendorID,
		VendorName:  "Seef Spaces",
		BranchID:    a.BranchID,
		BranchName:  "Seef Tower",
		ServiceID:   a.ServiceID,
		RequestType: a.RequestType.String(),
		OldValue:    a.OldValue,
		NewValue:    a.NewValue,
		Reason:      a.Reason,
		Status:      a.Status.String(),
		CreatedAt:   a.CreatedAt,
	}
}

func (a *ApprovalBuilder) BuildSubmitRequestDTO() reqdto.SubmitApprovalRequest {
	return reqdto.SubmitApprovalRequest{
		BranchID:    a.BranchID,
		ServiceID:   a.ServiceID,
		RequestType: a.RequestType.String(),
		OldValue:    a.OldValue,
		NewValue:    a.NewValue,
		Reason:      a.Reason,
	}
}
