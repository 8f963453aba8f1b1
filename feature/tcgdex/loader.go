package tcgdex

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	client  *Client
	handler *Handler
}

// NewFeature creates a new TCGdex feature.
func NewFeature(client *Client, logger *zap.Logger) *Feature {
	h := NewHandler(client, logger)
	return &Feature{client: client, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tcgdex"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
