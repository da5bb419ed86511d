package tracking

import (
	"order-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shipment tracking.
type Handler struct {
	client *Client
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(client *Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// RegisterRoutes registers the tracking routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tracking")
	group.Get("/:awb", h.HandleTrack)
}

// HandleTrack proxies a tracking lookup to the courier API.
// @Summary Track Shipment
// @Description Fetch the courier's tracking payload for an AWB number.
// @Tags tracking
// @Produce json
// @Param awb path string true "AWB number"
// @Success 200 {object} object "Courier tracking payload"
// @Failure 502 {object} map[string]string "Upstream tracking API failure"
// @Router /tracking/{awb} [get]
func (h *Handler) HandleTrack(c *fiber.Ctx) error {
	awbNo := c.Params("awb")
	l := logger.WithRayID(h.logger, c)

	payload, err := h.client.Track(c.Context(), awbNo)
	if err != nil {
		l.Error("Tracking lookup failed", zap.String("awb_no", awbNo), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to fetch tracking data",
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}
