package invoices

import (
	"order-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     Config
	handler *Handler
}

// NewFeature creates a new Invoices feature.
func NewFeature(cfg Config, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	svc := NewService(NewMailbox(cfg), client, bucket, logger)
	h := NewHandler(svc, logger)
	return &Feature{cfg: cfg, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "invoices"
}

// IsEnabled checks if the feature is enabled. The feature needs a configured
// mailbox.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Host != "" && f.cfg.User != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
