package repositories

import (
	"context"

	"outfitrental/internal/models"
)

// RentalRepository defines the interface for outfit rental data access.
type RentalRepository interface {
	GetAll(ctx context.Context) ([]models.OutfitRental, error)
	GetByID(ctx context.Context, id string) (*models.OutfitRental, error)
	Create(ctx context.Context, rental *models.OutfitRental) error
}
