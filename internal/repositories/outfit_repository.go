package repositories

import (
	"context"

	"outfitrental/internal/models"
)

// OutfitRepository defines the interface for outfit data access.
type OutfitRepository interface {
	GetAll(ctx context.Context) ([]models.Outfit, error)
	GetByID(ctx context.Context, id string) (*models.Outfit, error)
	Create(ctx context.Context, outfit *models.Outfit) error
	// CreateWithItems persists the items and then the outfit as one unit:
	// either all records are written or none are.
	CreateWithItems(ctx context.Context, outfit *models.Outfit, items []*models.Item) error
}
