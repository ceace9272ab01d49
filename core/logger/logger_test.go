package logger

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		levels map[zapcore.Level]bool
	}{
		{
			name:   "Debug console",
			cfg:    Config{Level: "debug", Format: "console"},
			levels: map[zapcore.Level]bool{zapcore.DebugLevel: true, zapcore.InfoLevel: true},
		},
		{
			name:   "Info json",
			cfg:    Config{Level: "info", Format: "json"},
			levels: map[zapcore.Level]bool{zapcore.DebugLevel: false, zapcore.InfoLevel: true},
		},
		{
			name:   "Warn",
			cfg:    Config{Level: "warn", Format: "console"},
			levels: map[zapcore.Level]bool{zapcore.InfoLevel: false, zapcore.WarnLevel: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
			for lvl, enabled := range tt.levels {
				assert.Equal(t, enabled, l.Core().Enabled(lvl), "level %s", lvl)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&Config{Level: "loud", Format: "console"})
	assert.Error(t, err)

	_, err = New(&Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := build(&Config{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("Image downloaded", zap.String("path", "downloads/logo.png"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Image downloaded", entry["message"])
	assert.Equal(t, "downloads/logo.png", entry["path"])
	assert.Contains(t, entry, "time")
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		WithRayID(base, c).Info("tagged")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("untagged")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ray-123", entries[0].ContextMap()["ray_id"])
	assert.NotContains(t, entries[1].ContextMap(), "ray_id")
}
