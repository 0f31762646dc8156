//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"
)

func rateLimitedRouter(cfg config.RateLimitConfig, rdb *redis.Client, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", middleware.RateLimit(cfg, rdb, logger), func(c *gin.Context) { c.Status(http.StatusAccepted) })
	return r
}

func TestRateLimit_FailsOpen(t *testing.T) {
	enabled := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Minute, Prefix: "rl"}

	tests := []struct {
		name string
		cfg  config.RateLimitConfig
		rdb  *redis.Client
	}{
		{name: "disabled", cfg: config.RateLimitConfig{Enabled: false}, rdb: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})},
		{name: "no redis client", cfg: enabled},
		{name: "redis unreachable", cfg: enabled, rdb: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := rateLimitedRouter(tc.cfg, tc.rdb, testutil.DiscardLogger())
			for range 3 {
				rec := httptest.PerformRequest(t, router, http.MethodPost, "/contact", nil, "")
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
			}
		})
	}
}

func TestRateLimit_LogsRedisFailureThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Minute, Prefix: "rl"}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})

	rec := httptest.PerformRequest(t, rateLimitedRouter(cfg, rdb, logger), http.MethodPost, "/contact", nil, "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, buf.String(), "rate limiter unavailable")
	assert.Contains(t, buf.String(), "rl:ip:")
}
