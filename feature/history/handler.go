package history

import (
	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the download history.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history", h.HandleList)
}

// HandleList returns the latest download records.
// @Summary List Downloads
// @Description Returns the most recent image downloads, newest first.
// @Tags history
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of records (default 50)"
// @Success 200 {array} history.DownloadRecord "Records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.repo.List(c.Context(), utils.ToInt(c.Query("limit")))
	if err != nil {
		l.Error("Listing download history failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}
