package invoices

import (
	"order-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for invoices.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the invoices routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/invoices")
	group.Get("/fetch", h.HandleFetch)
	group.Get("/archive", h.HandleListArchive)
	group.Get("/archive/:filename", h.HandleDownload)
}

// HandleFetch triggers a mailbox crawl and returns the extracted invoices.
// @Summary Fetch Invoices
// @Description Pull today's invoice PDFs from the mailbox, extract PO metadata, archive the files.
// @Tags invoices
// @Produce json
// @Success 200 {array} invoices.InvoiceDetails "Extracted invoice records"
// @Failure 502 {object} map[string]string "Mailbox failure"
// @Router /invoices/fetch [get]
func (h *Handler) HandleFetch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.service.FetchInvoices(c.Context())
	if err != nil {
		l.Error("Invoice fetch failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to fetch invoices from mailbox",
		})
	}

	return c.JSON(records)
}

// HandleListArchive lists archived invoice PDFs.
// @Summary List Archived Invoices
// @Description List the filenames of archived invoice PDFs.
// @Tags invoices
// @Produce json
// @Success 200 {array} string "Filenames"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /invoices/archive [get]
func (h *Handler) HandleListArchive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	names, err := h.service.ListArchived(c.Context())
	if err != nil {
		l.Error("Archive listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list archived invoices",
		})
	}

	return c.JSON(names)
}

// HandleDownload streams one archived invoice PDF.
// @Summary Download Archived Invoice
// @Description Stream an archived invoice PDF by filename.
// @Tags invoices
// @Produce application/pdf
// @Param filename path string true "Archived filename"
// @Success 200 {file} binary "PDF content"
// @Failure 404 {object} map[string]string "Not archived"
// @Router /invoices/archive/{filename} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	object, err := h.service.OpenArchived(c.Context(), c.Params("filename"))
	if err != nil {
		l.Warn("Archived invoice not found",
			zap.String("filename", c.Params("filename")), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "invoice not found",
		})
	}

	c.Set("Content-Type", "application/pdf")
	return c.SendStream(object)
}
