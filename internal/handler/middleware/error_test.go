//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func errorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "slot taken"
		_ = c.Error(gin.Error{Err: errors.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
	})
	r.GET("/written", func(c *gin.Context) {
		httperr.BadRequest(c, errors.New("bad"), "Invalid request")
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("nil map write")
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := errorRouter()

	t.Run("public error renders its response", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "slot taken")
	})

	t.Run("private error becomes a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("already written response is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/written", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "nil map")
	})
}
