package api

import (
	"net/http"

	reqdto "cowork-booking/internal/handler/dto/request"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferingHandler struct {
	q     queries.OfferingQueries
	avail commands.AvailabilityCommands
}

func NewOfferingHandler(q queries.OfferingQueries, avail commands.AvailabilityCommands) *OfferingHandler {
	return &OfferingHandler{q: q, avail: avail}
}

// @Summary Price quote
// @Tags offerings
// @Produce json
// @Param id path string true "Offering ID"
// @Param start query string true "RFC3339 start"
// @Param end query string true "RFC3339 end"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/offerings/{id}/quote [get]
func (h *OfferingHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	view, err := h.q.Quote(c.Request.Context(), id, q.Start, q.End)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Check availability
// @Tags offerings
// @Produce json
// @Param id path string true "Offering ID"
// @Param start query string true "RFC3339 start"
// @Param end query string true "RFC3339 end"
// @Param quantity query int false "Units (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/offerings/{id}/availability [get]
func (h *OfferingHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), id, q.Start, q.End, q.Quantity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Set availability for a day
// @Tags vendor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body reqdto.SetAvailabilityRequest true "Ledger day"
// @Success 200 {object} resdto.AvailabilityRecordResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/vendor/offerings/{id}/availability [put]
func (h *OfferingHandler) SetAvailability(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	rec, err := h.avail.SetDay(c.Request.Context(), userID, role, req.ToInput(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityRecord(rec))
}
