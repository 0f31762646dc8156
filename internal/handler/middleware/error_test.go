//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/abort", func(c *gin.Context) {
		httperr.Abort(c, http.StatusConflict, errs.New("dup"), "Already exists")
	})
	r.GET("/public-no-body", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errs.New("gone"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusGone, "Resource gone", nil),
		})
	})
	r.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errs.New("boom"))
	})
	r.GET("/status-only", func(c *gin.Context) {
		_ = c.Error(errs.New("teapot"))
		c.Status(http.StatusTeapot)
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("kaboom")
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter()

	t.Run("successful responses pass through", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("written error bodies are left alone", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/abort", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Already exists")
	})

	t.Run("public error without a body is rendered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public-no-body", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusGone, "Resource gone")
	})

	t.Run("private error becomes a 500 envelope", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private-error", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/status-only", nil, "")
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	router := newErrorRouter()

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
