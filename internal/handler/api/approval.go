package api

import (
	"context"
	"net/http"

	"cowork-booking/internal/domain/approval"
	reqdto "cowork-booking/internal/handler/dto/request"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApprovalHandler struct {
	cmds commands.ApprovalCommands
	q    queries.ApprovalQueries
}

func NewApprovalHandler(cmds commands.ApprovalCommands, q queries.ApprovalQueries) *ApprovalHandler {
	return &ApprovalHandler{cmds: cmds, q: q}
}

// @Summary Submit approval request
// @Tags vendor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitApprovalRequest true "Change request"
// @Success 201 {object} resdto.ApprovalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/vendor/approval-requests [post]
func (h *ApprovalHandler) Submit(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.SubmitApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	r, err := h.cmds.Submit(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromApprovalRequest(r))
}

// @Summary List my approval requests
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ApprovalResponse
// @Router /api/vendor/approval-requests [get]
func (h *ApprovalHandler) ListMine(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}
	views, err := h.q.FindByVendor(c.Request.Context(), userID)
	h.writeViews(c, views, err)
}

// @Summary List approval requests by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {array} resdto.ApprovalResponse
// @Router /api/admin/approval-requests [get]
func (h *ApprovalHandler) ListByStatus(c *gin.Context) {
	var q reqdto.ListApprovalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	views, err := h.q.FindByStatus(c.Request.Context(), approval.Status(q.Status))
	h.writeViews(c, views, err)
}

// @Summary Approve request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Approval request ID"
// @Param request body reqdto.ReviewApprovalRequest false "Review notes"
// @Success 200 {object} resdto.ApprovalResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/approval-requests/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	h.review(c, h.cmds.Approve)
}

// @Summary Reject request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Approval request ID"
// @Param request body reqdto.ReviewApprovalRequest false "Review notes"
// @Success 200 {object} resdto.ApprovalResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/approval-requests/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	h.review(c, h.cmds.Reject)
}

type reviewFunc func(ctx context.Context, id, reviewerID uuid.UUID, notes string) (*approval.Request, error)

func (h *ApprovalHandler) review(c *gin.Context, fn reviewFunc) {
	reviewerID, _, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReviewApprovalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	r, err := fn(c.Request.Context(), id, reviewerID, req.Notes)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApprovalRequest(r))
}

func (h *ApprovalHandler) writeViews(c *gin.Context, views []*queries.ApprovalView, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromApprovalViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
