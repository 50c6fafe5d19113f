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

// MockItemRepository is an in-memory implementation of ItemRepository.
// It is a test double; the server always runs on the GORM repositories.
type MockItemRepository struct {
	items map[string]models.Item
	order []string
	mu    sync.RWMutex
}

// NewMockItemRepository creates a new instance of MockItemRepository.
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items: make(map[string]models.Item),
	}
}

// GetAll returns all items in insertion order.
func (r *MockItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.Item, 0, len(r.items))
	for _, id := range r.order {
		itemList = append(itemList, r.items[id])
	}
	return itemList, nil
}

// GetByID returns an item by its ID.
func (r *MockItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &item, nil
}

// Create adds a new item.
func (r *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(item)
}

// Delete removes an item by its ID. Missing ids are ignored.
func (r *MockItemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MockItemRepository) insertLocked(item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, exists := r.items[item.ID]; exists {
		return apperrors.Store("create item", fmt.Errorf("duplicate item ID %s", item.ID))
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}
