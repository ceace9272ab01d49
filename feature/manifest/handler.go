package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/core/reconcile"
	"figma-asset-downloader/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for manifest checks.
type Handler struct {
	service      *Service
	manifestPath string
}

// NewHandler creates a new HTTP handler. manifestPath is checked when a request names none,
// and its directory holds every manifest a request may name.
func NewHandler(service *Service, manifestPath string) *Handler {
	return &Handler{service: service, manifestPath: manifestPath}
}

// RegisterRoutes registers the manifest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/manifest")
	group.Get("/check", h.HandleCheck)
	group.Get("/plan", h.HandlePlan)
}

// HandleCheck reconciles a manifest against its assets directory.
// @Summary Check Manifest
// @Description Compares the assets declared in a manifest with the files on disk and reports missing and new assets.
// @Tags manifest
// @Accept json
// @Produce json
// @Param manifest query string false "Manifest path relative to the server manifest directory (defaults to the server manifest)"
// @Param extensions query string false "Comma separated extensions replacing the manifest's"
// @Param scales query string false "Comma separated scales replacing the manifest's"
// @Success 200 {object} reconcile.CheckResult "Check Result"
// @Failure 400 {object} map[string]string "Invalid query or manifest outside the manifests directory"
// @Failure 404 {object} map[string]string "Manifest or assets directory not found"
// @Failure 422 {object} map[string]string "Malformed manifest"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /manifest/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	source, err := h.source(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Check(c.Context(), source)
	if err != nil {
		l.Error("Manifest check failed", zap.String("manifest", source.ManifestPath), zap.Error(err))
		return c.Status(statusFor(err)).JSON(errorBody(err))
	}

	return c.JSON(result)
}

// HandlePlan returns the follow-up actions a validation run would execute.
// @Summary Plan Manifest Actions
// @Description Checks a manifest and lists the optimize or purge actions planned for new assets. Nothing is executed.
// @Tags manifest
// @Accept json
// @Produce json
// @Param manifest query string false "Manifest path relative to the server manifest directory (defaults to the server manifest)"
// @Param optimize query boolean false "Plan optimization of new assets"
// @Param purge query boolean false "Plan deletion of new assets"
// @Success 200 {object} reconcile.Plan "Plan"
// @Failure 400 {object} map[string]string "Invalid query or manifest outside the manifests directory"
// @Failure 404 {object} map[string]string "Manifest or assets directory not found"
// @Failure 422 {object} map[string]string "Malformed manifest"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /manifest/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	source, err := h.source(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Check(c.Context(), source)
	if err != nil {
		l.Error("Manifest plan failed", zap.String("manifest", source.ManifestPath), zap.Error(err))
		return c.Status(statusFor(err)).JSON(errorBody(err))
	}

	plan := h.service.Plan(result, reconcile.PlanOptions{
		Optimize: utils.ToBool(c.Query("optimize")),
		Purge:    utils.ToBool(c.Query("purge")),
		DryRun:   true,
	})

	return c.JSON(plan)
}

// source builds the file source described by the query string.
func (h *Handler) source(c *fiber.Ctx) (*FileSource, error) {
	path, err := h.manifestFor(c.Query("manifest"))
	if err != nil {
		return nil, err
	}
	source := NewFileSource(path)
	source.Extensions = utils.SplitList(c.Query("extensions"))

	scales, err := utils.ParseScales(c.Query("scales"))
	if err != nil {
		return nil, err
	}
	source.Scales = scales
	return source, nil
}

// manifestFor resolves a requested manifest inside the directory of the
// server manifest. Absolute paths and paths leaving that directory are rejected.
func (h *Handler) manifestFor(name string) (string, error) {
	if name == "" {
		return h.manifestPath, nil
	}
	name = filepath.FromSlash(name)
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("manifest %q must be a relative path inside the manifests directory", name)
	}
	return filepath.Join(filepath.Dir(h.manifestPath), name), nil
}

func statusFor(err error) int {
	switch reconcile.KindOf(err) {
	case reconcile.KindParse:
		return fiber.StatusUnprocessableEntity
	case reconcile.KindIO:
		if errors.Is(err, fs.ErrNotExist) {
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}

func errorBody(err error) fiber.Map {
	return fiber.Map{
		"error": err.Error(),
		"kind":  reconcile.KindOf(err).String(),
	}
}
