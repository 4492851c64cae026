package response

import (
	"time"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApprovalResponse struct {
	ID          uuid.UUID  `json:"id"`
	VendorID    uuid.UUID  `json:"vendorId"`
	VendorName  string     `json:"vendorName,omitempty"`
	BranchID    uuid.UUID  `json:"branchId"`
	BranchName  string     `json:"branchName,omitempty"`
	ServiceID   *uuid.UUID `json:"serviceId,omitempty"`
	ServiceName *string    `json:"serviceName,omitempty"`
	RequestType string     `json:"requestType"`
	OldValue    *string    `json:"oldValue,omitempty"`
	NewValue    string     `json:"newValue"`
	Reason      *string    `json:"reason,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReviewedBy  *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewNotes *string    `json:"reviewNotes,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}

// FromApprovalViews relies on the view and response sharing field names.
func FromApprovalViews(views []*queries.ApprovalView) ([]*ApprovalResponse, error) {
	out := make([]*ApprovalResponse, len(views))
	for i, v := range views {
		out[i] = &ApprovalResponse{}
		if err := copier.Copy(out[i], v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func FromApprovalRequest(r *approval.Request) *ApprovalResponse {
	return &ApprovalResponse{
		ID:          r.ID(),
		VendorID:    r.VendorID(),
		BranchID:    r.BranchID(),
		ServiceID:   r.ServiceID(),
		RequestType: r.RequestType().String(),
		OldValue:    r.OldValue(),
		NewValue:    r.NewValue(),
		Reason:      r.Reason(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt(),
		ReviewedBy:  r.ReviewedBy(),
		ReviewNotes: r.ReviewNotes(),
		ReviewedAt:  r.ReviewedAt(),
	}
}
