package account

import (
	"collection-tracker/core/middleware/auth"
	"collection-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the account feature.
func NewFeature(db *gorm.DB, store storage.Client, bucket string, authCfg auth.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, store, bucket, authCfg, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "account"
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
