//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/handler/api"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/handler/validation"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/tests/common/builder"
	"cowork-booking/tests/common/httptest"
	"cowork-booking/tests/common/testutil"
	commandsmock "cowork-booking/tests/mock/commands"
	queriesmock "cowork-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApprovalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockApprovalCommands
	mockQueries  *queriesmock.MockApprovalQueries
	userID       uuid.UUID
}

func (s *ApprovalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.MustRegister()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockApprovalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockApprovalQueries(s.mockCtrl)
	h := api.NewApprovalHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	auth := stubAuth(s.userID)
	s.router.POST("/vendor/approval-requests", auth, h.Submit)
	s.router.GET("/vendor/approval-requests", auth, h.ListMine)
	s.router.GET("/admin/approval-requests", auth, h.ListByStatus)
	s.router.POST("/admin/approval-requests/:id/approve", auth, h.Approve)
	s.router.POST("/admin/approval-requests/:id/reject", auth, h.Reject)
}

func (s *ApprovalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApprovalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApprovalHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ApprovalHandlerTestSuite) TestSubmit() {
	url := "/vendor/approval-requests"
	b := builder.NewApprovalBuilder().WithVendor(s.userID)
	reqBody := b.BuildSubmitRequestDTO()
	created := b.BuildDomain()

	s.Run("success: returns 201 with a pending request", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.userID, reqBody.ToInput()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ApprovalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("PENDING", body.Status)
		s.Equal("price_change", body.RequestType)
		s.Equal("6.000", body.NewValue)
		s.Nil(body.ReviewedBy)
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "unknown request type", mutate: testutil.Field("requestType", "rename_branch")},
		{name: "missing request type", mutate: testutil.Field("requestType", nil)},
		{name: "missing new value", mutate: testutil.Field("newValue", nil)},
		{name: "overlong new value", mutate: testutil.Field("newValue", strings.Repeat("9", 1001))},
		{name: "missing branch", mutate: testutil.Field("branchId", nil)},
		{name: "overlong reason", mutate: testutil.Field("reason", strings.Repeat("r", 1001))},
	}
	for _, tc := range invalid {
		s.Run("error: 400 "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 422 on blank new value from the domain", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).Return(nil, approval.ErrEmptyNewValue).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("newValue", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "new value is required")
	})

	refused := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "403 for another vendor's branch", err: commands.ErrForbidden, status: http.StatusForbidden, msg: "not allowed"},
		{name: "404 for an unknown branch", err: commands.ErrBranchNotFound, status: http.StatusNotFound, msg: "branch not found"},
		{name: "404 for an unknown service", err: commands.ErrServiceNotFound, status: http.StatusNotFound, msg: "service not found"},
	}
	for _, tc := range refused {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
		})
	}
}

// ================================================================================
// Listing
// ================================================================================

func (s *ApprovalHandlerTestSuite) TestListMine() {
	s.Run("success: includes vendor and branch names", func() {
		views := []*queries.ApprovalView{builder.NewApprovalBuilder().WithVendor(s.userID).BuildView()}
		s.mockQueries.EXPECT().FindByVendor(gomock.Any(), s.userID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/approval-requests", nil, "bearer-token")

		var body []resdto.ApprovalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Seef Spaces", body[0].VendorName)
		s.Equal("Seef Tower", body[0].BranchName)
		s.Equal(views[0].ID, body[0].ID)
	})
}

func (s *ApprovalHandlerTestSuite) TestListByStatus() {
	cases := []struct {
		name   string
		query  string
		status approval.Status
	}{
		{name: "defaults to pending", query: "", status: approval.StatusPending},
		{name: "approved", query: "?status=APPROVED", status: approval.StatusApproved},
		{name: "rejected", query: "?status=REJECTED", status: approval.StatusRejected},
	}
	for _, tc := range cases {
		s.Run("success: "+tc.name, func() {
			s.mockQueries.EXPECT().FindByStatus(gomock.Any(), tc.status).Return(nil, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/approval-requests"+tc.query, nil, "bearer-token")
			s.Equal(http.StatusOK, rec.Code)
			s.JSONEq("[]", rec.Body.String())
		})
	}

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/approval-requests?status=approved", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// Review
// ================================================================================

func (s *ApprovalHandlerTestSuite) TestReview() {
	pending := builder.NewApprovalBuilder()
	id := pending.ID
	approved := pending.WithStatus(approval.StatusApproved).BuildDomain()

	s.Run("success: approve without notes", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.userID, "").Return(approved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/approval-requests/"+id.String()+"/approve", nil, "bearer-token")

		var body resdto.ApprovalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
	})

	s.Run("error: rejecting an approved request is 409", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, s.userID, "late").Return(nil, approval.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/approval-requests/"+id.String()+"/reject",
			map[string]any{"notes": "late"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already reviewed")
	})

	s.Run("error: 404 for unknown request", func() {
		missing := uuid.New()
		s.mockCommands.EXPECT().Approve(gomock.Any(), missing, s.userID, "").Return(nil, commands.ErrApprovalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/approval-requests/"+missing.String()+"/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "approval request not found")
	})

	s.Run("error: 400 on overlong notes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/approval-requests/"+id.String()+"/reject",
			map[string]any{"notes": strings.Repeat("n", 1001)}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
