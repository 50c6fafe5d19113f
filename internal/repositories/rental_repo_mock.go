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

// MockRentalRepository is an in-memory implementation of RentalRepository.
// It is a test double; the server always runs on the GORM repositories.
type MockRentalRepository struct {
	rentals map[string]models.OutfitRental
	order   []string
	mu      sync.RWMutex
}

// NewMockRentalRepository creates a new instance of MockRentalRepository.
func NewMockRentalRepository() *MockRentalRepository {
	return &MockRentalRepository{
		rentals: make(map[string]models.OutfitRental),
	}
}

// GetAll returns all rentals in insertion order.
func (r *MockRentalRepository) GetAll(ctx context.Context) ([]models.OutfitRental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rentalList := make([]models.OutfitRental, 0, len(r.rentals))
	for _, id := range r.order {
		rentalList = append(rentalList, r.rentals[id])
	}
	return rentalList, nil
}

// GetByID returns a rental by its ID.
func (r *MockRentalRepository) GetByID(ctx context.Context, id string) (*models.OutfitRental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rental, ok := r.rentals[id]
	if !ok {
		return nil, fmt.Errorf("rental with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &rental, nil
}

// Create adds a new rental.
func (r *MockRentalRepository) Create(ctx context.Context, rental *models.OutfitRental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rental.ID == "" {
		rental.ID = uuid.New().String()
	}
	if rental.CreatedAt.IsZero() {
		rental.CreatedAt = time.Now()
	}
	r.rentals[rental.ID] = *rental
	r.order = append(r.order, rental.ID)
	return nil
}
