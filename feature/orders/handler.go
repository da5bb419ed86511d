package orders

import (
	"errors"

	"order-manager/core/logger"
	"order-manager/feature/orders/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the orders routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Post("/upload", h.HandleUpload)
	group.Get("/", h.HandleListOrders)
}

// HandleUpload ingests an order export batch.
// @Summary Upload Order Export
// @Description Reconcile a JSON array of export rows against the store in one transaction.
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {object} models.UploadSummary "Counters for the committed batch"
// @Failure 400 {object} map[string]string "Malformed payload or row"
// @Failure 409 {object} map[string]string "Duplicate rejected by the store"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /orders/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var rows []models.RawRow
	if err := c.BodyParser(&rows); err != nil {
		l.Warn("Rejected unparseable export payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request body must be a JSON array of export rows",
		})
	}

	summary, err := h.service.UploadRows(c.Context(), rows)
	if err != nil {
		status := statusForUploadError(err)
		if status == fiber.StatusInternalServerError {
			// Operators get the detail, callers get a generic message.
			l.Error("Export upload failed", zap.Error(err))
			return c.Status(status).JSON(fiber.Map{
				"error": "error uploading data",
			})
		}
		l.Warn("Export upload rejected", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleListOrders returns all orders with nested sub-orders.
// @Summary List Orders
// @Description List persisted orders with their sub-orders, newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order "Orders"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [get]
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.ListOrders(c.Context())
	if err != nil {
		l.Error("Order listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error fetching orders",
		})
	}

	return c.JSON(result)
}

// statusForUploadError maps the upload error taxonomy onto HTTP statuses.
func statusForUploadError(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
