//go:build e2e

package approval_test

import (
	"fmt"
	"net/http"
	"testing"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/infra/notify"
	"cowork-booking/tests/common/builder"
	"cowork-booking/tests/common/dbtest"
	"cowork-booking/tests/common/httptest"
	"cowork-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vendorRequestsURL = "/api/vendor/approval-requests"
	adminRequestsURL  = "/api/admin/approval-requests"
	approveURL        = "/api/admin/approval-requests/%s/approve"
	rejectURL         = "/api/admin/approval-requests/%s/reject"
)

type ApprovalSuite struct {
	e2e.SharedSuite
}

func TestApprovalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ApprovalSuite))
}

func (s *ApprovalSuite) submit(vendorID, branchID uuid.UUID) response.ApprovalResponse {
	t := s.T()
	token := s.Tokens.GenerateToken(t, vendorID, user.RoleVendor)
	reqBody := builder.NewApprovalBuilder().
		WithVendor(vendorID).
		With(func(a *builder.ApprovalBuilder) { a.BranchID = branchID }).
		BuildSubmitRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, vendorRequestsURL, reqBody, token)
	var created response.ApprovalResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

func (s *ApprovalSuite) TestReviewFlow() {
	s.Run("approved request cannot be rejected afterwards", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		created := s.submit(f.VendorID, f.BranchID)
		require.Equal(t, "PENDING", created.Status)

		admin := s.Tokens.GenerateToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminRequestsURL, nil, admin)
		var pending []response.ApprovalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Len(t, pending, 1)
		require.Equal(t, "Test Vendor", pending[0].VendorName)
		require.Equal(t, "Test Branch", pending[0].BranchName)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), map[string]any{"notes": "ok"}, admin)
		var approved response.ApprovalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.Equal(t, "APPROVED", approved.Status)
		require.NotNil(t, approved.ReviewedAt)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, notify.TopicApprovalReviewed))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, created.ID), nil, admin)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already reviewed")
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, notify.TopicApprovalReviewed))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminRequestsURL+"?status=APPROVED", nil, admin)
		var reviewed []response.ApprovalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviewed)
		require.Len(t, reviewed, 1)
	})

	s.Run("vendor lists only their own requests", func() {
		t := s.T()
		mine := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		theirs := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		s.submit(mine.VendorID, mine.BranchID)
		s.submit(theirs.VendorID, theirs.BranchID)

		token := s.Tokens.GenerateToken(t, mine.VendorID, user.RoleVendor)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vendorRequestsURL, nil, token)
		var got []response.ApprovalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		require.Equal(t, mine.VendorID, got[0].VendorID)
	})

	s.Run("only admins review", func() {
		t := s.T()
		f := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		created := s.submit(f.VendorID, f.BranchID)

		vendor := s.Tokens.GenerateToken(t, f.VendorID, user.RoleVendor)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, created.ID), nil, vendor)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *ApprovalSuite) TestSubmitReferences() {
	refused := func(vendorID uuid.UUID, mutate func(a *builder.ApprovalBuilder), status int, msg string) {
		t := s.T()
		token := s.Tokens.GenerateToken(t, vendorID, user.RoleVendor)
		reqBody := builder.NewApprovalBuilder().WithVendor(vendorID).With(mutate).BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vendorRequestsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, status, msg)
	}

	s.Run("another vendor's branch is forbidden", func() {
		t := s.T()
		mine := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())
		theirs := dbtest.CreateOffering(t, s.DB, dbtest.DefaultOfferingParams())

		refused(mine.VendorID, func(a *builder.ApprovalBuilder) { a.BranchID = theirs.BranchID },
			http.StatusForbidden, "not allowed")

		admin := s.Tokens.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminRequestsURL, nil, admin)
		var pending []response.ApprovalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Empty(t, pending)
	})

	s.Run("unknown branch is not found", func() {
		f := dbtest.CreateOffering(s.T(), s.DB, dbtest.DefaultOfferingParams())

		refused(f.VendorID, func(a *builder.ApprovalBuilder) { a.BranchID = uuid.New() },
			http.StatusNotFound, "branch not found")
	})

	s.Run("unknown service is not found", func() {
		f := dbtest.CreateOffering(s.T(), s.DB, dbtest.DefaultOfferingParams())
		serviceID := uuid.New()

		refused(f.VendorID, func(a *builder.ApprovalBuilder) {
			a.BranchID = f.BranchID
			a.ServiceID = &serviceID
		}, http.StatusNotFound, "service not found")
	})
}
