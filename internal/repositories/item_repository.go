package repositories

import (
	"context"

	"outfitrental/internal/models"
)

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	// Delete removes an item. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
