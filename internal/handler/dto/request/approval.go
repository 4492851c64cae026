package request

import (
	"cowork-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitApprovalRequest struct {
	BranchID    uuid.UUID  `json:"branchId" binding:"required"`
	ServiceID   *uuid.UUID `json:"serviceId,omitempty"`
	RequestType string     `json:"requestType" binding:"required,approvaltype"`
	OldValue    *string    `json:"oldValue,omitempty" binding:"omitempty,max=1000"`
	NewValue    string     `json:"newValue" binding:"required,max=1000"`
	Reason      *string    `json:"reason,omitempty" binding:"omitempty,max=1000"`
}

func (r SubmitApprovalRequest) ToInput() commands.SubmitApprovalInput {
	return commands.SubmitApprovalInput{
		BranchID:    r.BranchID,
		ServiceID:   r.ServiceID,
		RequestType: r.RequestType,
		OldValue:    r.OldValue,
		NewValue:    r.NewValue,
		Reason:      r.Reason,
	}
}

type ReviewApprovalRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

type ListApprovalsQuery struct {
	Status string `form:"status,default=PENDING" binding:"approvalstatus"`
}
