//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
)

func corsPreflight(t *testing.T, cfg config.CORSConfig, origin string) *nethttptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.POST("/api/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := nethttptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func baseCORS() config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:     []string{"https://holistic.example"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}

func TestCORS(t *testing.T) {
	t.Run("listed origin with credentials", func(t *testing.T) {
		rec := corsPreflight(t, baseCORS(), "https://holistic.example")
		assert.Equal(t, "https://holistic.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		rec := corsPreflight(t, baseCORS(), "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := baseCORS()
		cfg.AllowOrigins = []string{"*"}
		rec := corsPreflight(t, cfg, "https://anywhere.example")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
