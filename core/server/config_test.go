package server_test

import (
	"testing"
	"time"

	"figma-asset-downloader/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		auth bool
		ttl  time.Duration
		addr string
	}{
		{"Defaults", server.Config{Port: "8080", CacheTTLSeconds: 30}, false, 30 * time.Second, ":8080"},
		{"Protected", server.Config{Port: "9000", ApiKey: "secret"}, true, 0, ":9000"},
		{"NegativeTTL", server.Config{CacheTTLSeconds: -5}, false, 0, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.auth, tt.cfg.HasAuth())
			assert.Equal(t, tt.ttl, tt.cfg.CacheTTL())
			assert.Equal(t, tt.addr, tt.cfg.Addr())
		})
	}
}
