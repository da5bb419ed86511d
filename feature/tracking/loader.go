package tracking

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     Config
	handler *Handler
}

// NewFeature creates a new Tracking feature.
func NewFeature(cfg Config, logger *zap.Logger) *Feature {
	client := NewClient(cfg)
	h := NewHandler(client, logger)
	return &Feature{cfg: cfg, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tracking"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
