//go:build unit

package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"booking not found", commands.ErrBookingNotFound, http.StatusNotFound},
		{"forbidden", commands.ErrForbidden, http.StatusForbidden},
		{"booking transition", booking.ErrInvalidTransition, http.StatusConflict},
		{"approval transition", approval.ErrInvalidTransition, http.StatusConflict},
		{"no units", commands.ErrUnavailable, http.StatusConflict},
		{"ledger short", availability.ErrNotEnoughUnits, http.StatusConflict},
		{"duplicate booking number", commands.ErrBookingConflict, http.StatusConflict},
		{"too long", offering.ErrDurationTooLong, http.StatusUnprocessableEntity},
		{"wrapped validation", errs.Wrap(booking.ErrStartInPast, "create booking"), http.StatusUnprocessableEntity},
		{"fmt wrapped not found", fmt.Errorf("load: %w", commands.ErrOfferingNotFound), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"database failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(err error) *gin.Engine {
		r := gin.New()
		r.GET("/", func(c *gin.Context) { httperr.Abort(c, err) })
		return r
	}

	t.Run("client errors carry the message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, serve(commands.ErrUnavailable), http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "requested units are not available")
	})

	t.Run("server errors are opaque", func(t *testing.T) {
		rec := httptest.PerformRequest(t, serve(errors.New("password=hunter2")), http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})

	t.Run("nil error panics", func(t *testing.T) {
		r := gin.New()
		r.GET("/", func(c *gin.Context) {
			assert.Panics(t, func() {
				httperr.AbortWithError(c, http.StatusBadRequest, nil, "x", nil)
			})
			c.Status(http.StatusNoContent)
		})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
