//go:build unit

package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zolbayar-hub/holisticweb/internal/infra/cache"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
)

func TestNewRedisClient_Degrades(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RedisConfig
	}{
		{name: "not configured", cfg: config.RedisConfig{}},
		{name: "unreachable", cfg: config.RedisConfig{Addr: "127.0.0.1:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, cache.NewRedisClient(tt.cfg, testutil.DiscardLogger()))
		})
	}
}
