package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleList(t *testing.T) {
	db := setupSQLite(t)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	require.NoError(t, repo.Record(context.Background(),
		DownloadRecord{Name: "a", Status: StatusDownloaded},
		DownloadRecord{Name: "b", Status: StatusDownloaded},
	))

	app := fiber.New()
	feature := NewFeature(db, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/history?limit=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []DownloadRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 1)
}

func TestHandleList_Error(t *testing.T) {
	// No migration: the table does not exist
	app := fiber.New()
	require.NoError(t, NewFeature(setupSQLite(t), zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.False(t, feature.IsEnabled())
	assert.Equal(t, "history", feature.Name())
}
