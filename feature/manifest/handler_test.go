package manifest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"figma-asset-downloader/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(manifestPath string) *fiber.App {
	app := fiber.New()
	feature := NewFeature(NewService(zap.NewNop(), nil, nil), manifestPath)
	_ = feature.Load(app)
	return app
}

func TestHandleCheck(t *testing.T) {
	dir := t.TempDir()
	manifest := `files = ["a", "b"]` + "\npath = " + `"` + filepath.ToSlash(filepath.Join(dir, "downloads")) + `"`
	path := writeManifest(t, dir, manifest)
	writeTree(t, filepath.Join(dir, "downloads"), "a.png", "c.png")

	app := setupApp(path)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manifest/check", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result reconcile.CheckResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, []string{"b.png"}, result.Report.Missing)
	assert.Equal(t, []string{"c.png"}, result.Report.New)
}

func TestHandleCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "bad.toml")

	app := setupApp(filepath.Join(dir, "missing.toml"))

	tests := []struct {
		name   string
		query  string
		status int
		kind   string
	}{
		{"Missing manifest", "", fiber.StatusNotFound, "io"},
		{"Malformed manifest", "?manifest=bad.toml", fiber.StatusUnprocessableEntity, "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manifest/check"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.kind, body["kind"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandlePlan(t *testing.T) {
	dir := t.TempDir()
	manifest := `files = ["a"]` + "\npath = " + `"` + filepath.ToSlash(filepath.Join(dir, "downloads")) + `"`
	path := writeManifest(t, dir, manifest)
	writeTree(t, filepath.Join(dir, "downloads"), "a.png", "c.png", "d.png")

	app := setupApp(path)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manifest/plan?purge=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var plan reconcile.Plan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	assert.Equal(t, 2, plan.Summary.PurgeActions)
	assert.Equal(t, 2, plan.Summary.New)
}

func TestHandleCheck_Overrides(t *testing.T) {
	dir := t.TempDir()
	manifest := `files = ["a"]` + "\npath = " + `"` + filepath.ToSlash(filepath.Join(dir, "downloads")) + `"`
	path := writeManifest(t, dir, manifest)
	writeTree(t, filepath.Join(dir, "downloads"), "a.svg", "2.0x/a.svg")

	app := setupApp(path)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manifest/check?extensions=svg&scales=1,2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result reconcile.CheckResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Report.IsClean())
	assert.Equal(t, []int{1, 2}, result.Manifest.FileScales)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/manifest/check?scales=0", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCheck_ManifestConfinedToDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "manifests")
	writeTree(t, filepath.Join(dir, "nested"), "x.png")
	writeTree(t, filepath.Join(root, "downloads"), "a.png")
	path := writeManifest(t, dir, `files = ["a"]`+"\npath = "+`"`+filepath.ToSlash(filepath.Join(root, "downloads"))+`"`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "other.toml"), []byte(`files = ["a"]`+"\npath = "+`"`+filepath.ToSlash(filepath.Join(root, "downloads"))+`"`), 0o644))
	outside := writeManifest(t, root, `files = ["a"]`+"\npath = \"/etc\"")

	app := setupApp(path)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Absolute path", outside, fiber.StatusBadRequest},
		{"Parent directory", "../" + filepath.Base(outside), fiber.StatusBadRequest},
		{"Escaping nested path", "nested/../../" + filepath.Base(outside), fiber.StatusBadRequest},
		{"System file", "/etc/passwd", fiber.StatusBadRequest},
		{"Nested manifest", "nested/other.toml", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, route := range []string{"/manifest/check", "/manifest/plan"} {
				req := httptest.NewRequest(http.MethodGet, route+"?manifest="+url.QueryEscape(tt.query), nil)
				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.Equal(t, tt.status, resp.StatusCode, route)
			}
		})
	}
}
