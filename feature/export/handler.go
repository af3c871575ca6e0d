package export

import (
	"errors"

	"customer-service/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/v1/exports")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleListExports)
	group.Get("/:name", h.HandleGetExport)
	group.Delete("/:name", h.HandleDeleteExport)
}

// HandleExport uploads a new customer snapshot.
// @Summary Export Customers
// @Description Uploads a JSON snapshot of every customer to object storage.
// @Tags exports
// @Produce json
// @Success 201 {object} export.Report
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/exports [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	report, err := h.service.Export(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// HandleListExports lists stored snapshots.
// @Summary List Exports
// @Tags exports
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	objects, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"objects": objects,
	})
}

// HandleGetExport returns the contents of a stored snapshot.
// @Summary Get Export
// @Tags exports
// @Produce json
// @Param name path string true "Export name, e.g. customers-20261017T120000Z.json"
// @Success 200 {object} export.Snapshot
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/exports/{name} [get]
func (h *Handler) HandleGetExport(c *fiber.Ctx) error {
	snapshot, err := h.service.Get(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snapshot)
}

// HandleDeleteExport removes a stored snapshot.
// @Summary Delete Export
// @Tags exports
// @Param name path string true "Export name"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/exports/{name} [delete]
func (h *Handler) HandleDeleteExport(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("name")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrNotFound) {
		status = fiber.StatusNotFound
		l.Warn("Export not found", zap.Error(err))
	} else {
		l.Error("Export request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
