package services

import (
	"context"
	"fmt"
	"log/slog"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"
	"outfitrental/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ItemService handles business logic related to items.
type ItemService struct {
	repo     repositories.ItemRepository
	validate *validator.Validate
	events   EventPublisher
	recorder Recorder
}

// NewItemService creates a new ItemService. events and recorder may be nil.
func NewItemService(repo repositories.ItemRepository, events EventPublisher, recorder Recorder) *ItemService {
	return &ItemService{
		repo:     repo,
		validate: newValidator(),
		events:   events,
		recorder: recorder,
	}
}

// GetAllItems retrieves all items.
func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.repo.GetAll(ctx)
}

// GetItemByID retrieves a single item. Malformed ids are reported as not
// found.
func (s *ItemService) GetItemByID(ctx context.Context, id string) (*models.Item, error) {
	if !validID(id) {
		return nil, fmt.Errorf("item with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// ValidateItem checks the shape of an item before it is persisted.
func (s *ItemService) ValidateItem(item *models.Item) error {
	if vErr := validateStruct(s.validate, item); vErr != nil {
		return vErr
	}
	return nil
}

// CreateItem validates and persists a new item. The id is always assigned by
// the store.
func (s *ItemService) CreateItem(ctx context.Context, item *models.Item) error {
	if err := s.ValidateItem(item); err != nil {
		return err
	}

	item.ID = ""
	if err := s.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	slog.InfoContext(ctx, "item created", "item_id", item.ID, "name", item.Name)
	recordCreated(s.recorder, "item")
	publishEvent(ctx, s.events, EventItemCreated, item)
	return nil
}

// DeleteItem removes an item. Deleting an unknown or malformed id succeeds.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	slog.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}
