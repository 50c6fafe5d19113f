package repositories

import (
	"context"
	"errors"
	"fmt"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRentalRepository is a GORM implementation of RentalRepository.
type GORMRentalRepository struct {
	db *gorm.DB
}

// NewGORMRentalRepository creates a new instance of GORMRentalRepository.
func NewGORMRentalRepository(db *gorm.DB) *GORMRentalRepository {
	return &GORMRentalRepository{
		db: db,
	}
}

// GetAll retrieves all rentals from the database.
func (r *GORMRentalRepository) GetAll(ctx context.Context) ([]models.OutfitRental, error) {
	var rentals []models.OutfitRental
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rentals).Error; err != nil {
		return nil, apperrors.Store("get all rentals", err)
	}
	return rentals, nil
}

// GetByID retrieves a single rental by its ID from the database.
func (r *GORMRentalRepository) GetByID(ctx context.Context, id string) (*models.OutfitRental, error) {
	var rental models.OutfitRental
	if err := r.db.WithContext(ctx).First(&rental, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rental with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, apperrors.Store(fmt.Sprintf("get rental %s", id), err)
	}
	return &rental, nil
}

// Create creates a new rental in the database.
func (r *GORMRentalRepository) Create(ctx context.Context, rental *models.OutfitRental) error {
	if rental.ID == "" {
		rental.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(rental).Error; err != nil {
		return apperrors.Store("create rental", err)
	}
	return nil
}
