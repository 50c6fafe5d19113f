package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"

	"github.com/google/uuid"
)

// MockOutfitRepository is an in-memory implementation of OutfitRepository.
// It is a test double; the server always runs on the GORM repositories.
// Inline items are written into the shared MockItemRepository.
type MockOutfitRepository struct {
	items   *MockItemRepository
	outfits map[string]models.Outfit
	order   []string
	mu      sync.RWMutex
}

// NewMockOutfitRepository creates a new instance of MockOutfitRepository.
func NewMockOutfitRepository(items *MockItemRepository) *MockOutfitRepository {
	return &MockOutfitRepository{
		items:   items,
		outfits: make(map[string]models.Outfit),
	}
}

// GetAll returns all outfits in insertion order.
func (r *MockOutfitRepository) GetAll(ctx context.Context) ([]models.Outfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outfitList := make([]models.Outfit, 0, len(r.outfits))
	for _, id := range r.order {
		outfitList = append(outfitList, r.outfits[id])
	}
	return outfitList, nil
}

// GetByID returns an outfit by its ID.
func (r *MockOutfitRepository) GetByID(ctx context.Context, id string) (*models.Outfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outfit, ok := r.outfits[id]
	if !ok {
		return nil, fmt.Errorf("outfit with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &outfit, nil
}

// Create adds a new outfit.
func (r *MockOutfitRepository) Create(ctx context.Context, outfit *models.Outfit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(outfit)
}

// CreateWithItems adds the items and the outfit while holding both locks, so
// readers never observe a partial write.
func (r *MockOutfitRepository) CreateWithItems(ctx context.Context, outfit *models.Outfit, items []*models.Item) error {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, exists := r.items.items[item.ID]; exists || seen[item.ID] {
			return apperrors.Store("create inline item", fmt.Errorf("duplicate item ID %s", item.ID))
		}
		seen[item.ID] = true
	}
	if outfit.ID != "" {
		if _, exists := r.outfits[outfit.ID]; exists {
			return apperrors.Store("create outfit", fmt.Errorf("duplicate outfit ID %s", outfit.ID))
		}
	}

	for _, item := range items {
		if err := r.items.insertLocked(item); err != nil {
			return err
		}
	}
	return r.insertLocked(outfit)
}

func (r *MockOutfitRepository) insertLocked(outfit *models.Outfit) error {
	if outfit.ID == "" {
		outfit.ID = uuid.New().String()
	}
	if _, exists := r.outfits[outfit.ID]; exists {
		return apperrors.Store("create outfit", fmt.Errorf("duplicate outfit ID %s", outfit.ID))
	}
	if outfit.Items == nil {
		outfit.Items = []string{}
	}
	if outfit.CreatedAt.IsZero() {
		outfit.CreatedAt = time.Now()
	}
	stored := *outfit
	stored.Items = append([]string(nil), outfit.Items...)
	r.outfits[outfit.ID] = stored
	r.order = append(r.order, outfit.ID)
	return nil
}
