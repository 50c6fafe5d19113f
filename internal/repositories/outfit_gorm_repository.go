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

// GORMOutfitRepository is a GORM implementation of OutfitRepository.
type GORMOutfitRepository struct {
	db *gorm.DB
}

// NewGORMOutfitRepository creates a new instance of GORMOutfitRepository.
func NewGORMOutfitRepository(db *gorm.DB) *GORMOutfitRepository {
	return &GORMOutfitRepository{
		db: db,
	}
}

// GetAll retrieves all outfits from the database.
func (r *GORMOutfitRepository) GetAll(ctx context.Context) ([]models.Outfit, error) {
	var outfits []models.Outfit
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&outfits).Error; err != nil {
		return nil, apperrors.Store("get all outfits", err)
	}
	return outfits, nil
}

// GetByID retrieves a single outfit by its ID from the database.
func (r *GORMOutfitRepository) GetByID(ctx context.Context, id string) (*models.Outfit, error) {
	var outfit models.Outfit
	if err := r.db.WithContext(ctx).First(&outfit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("outfit with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, apperrors.Store(fmt.Sprintf("get outfit %s", id), err)
	}
	return &outfit, nil
}

// Create creates a new outfit in the database.
func (r *GORMOutfitRepository) Create(ctx context.Context, outfit *models.Outfit) error {
	return createOutfit(r.db.WithContext(ctx), outfit)
}

// CreateWithItems inserts the items and the outfit in a single transaction.
// On failure the ids assigned here are cleared again.
func (r *GORMOutfitRepository) CreateWithItems(ctx context.Context, outfit *models.Outfit, items []*models.Item) error {
	var assigned []*models.Item
	outfitAssigned := outfit.ID == ""

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.ID == "" {
				item.ID = uuid.New().String()
				assigned = append(assigned, item)
			}
			if err := tx.Create(item).Error; err != nil {
				return apperrors.Store(fmt.Sprintf("create inline item %q", item.Name), err)
			}
		}
		return createOutfit(tx, outfit)
	})
	if err != nil {
		for _, item := range assigned {
			item.ID = ""
		}
		if outfitAssigned {
			outfit.ID = ""
		}
	}
	return err
}

func createOutfit(db *gorm.DB, outfit *models.Outfit) error {
	if outfit.ID == "" {
		outfit.ID = uuid.New().String()
	}
	if outfit.Items == nil {
		outfit.Items = []string{}
	}
	if err := db.Create(outfit).Error; err != nil {
		return apperrors.Store("create outfit", err)
	}
	return nil
}
