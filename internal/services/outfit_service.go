package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"
	"outfitrental/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OutfitService handles business logic related to outfits.
type OutfitService struct {
	repo     repositories.OutfitRepository
	items    *ItemService
	validate *validator.Validate
	events   EventPublisher
	recorder Recorder
}

// NewOutfitService creates a new OutfitService. Inline items are validated
// with the rules of items.
func NewOutfitService(repo repositories.OutfitRepository, items *ItemService, events EventPublisher, recorder Recorder) *OutfitService {
	return &OutfitService{
		repo:     repo,
		items:    items,
		validate: newValidator(),
		events:   events,
		recorder: recorder,
	}
}

// GetAllOutfits retrieves all outfits.
func (s *OutfitService) GetAllOutfits(ctx context.Context) ([]models.Outfit, error) {
	return s.repo.GetAll(ctx)
}

// GetOutfitByID retrieves a single outfit. Malformed ids are reported as not
// found.
func (s *OutfitService) GetOutfitByID(ctx context.Context, id string) (*models.Outfit, error) {
	if !validID(id) {
		return nil, fmt.Errorf("outfit with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// CreateOutfit creates an outfit from a name and a list of item references.
// Existing ids are kept as weak references. Inline items are validated up
// front and written together with the outfit in one unit, so a failure leaves
// neither the outfit nor any of its inline items behind. The outfit's items
// keep the order of refs.
func (s *OutfitService) CreateOutfit(ctx context.Context, name string, refs []models.ItemRef) (*models.Outfit, error) {
	outfit := &models.Outfit{
		Name:  strings.TrimSpace(name),
		Items: make([]string, 0, len(refs)),
	}

	vErr := validateStruct(s.validate, outfit)
	if vErr == nil {
		vErr = &apperrors.ValidationError{}
	}

	var inline []*models.Item
	for i, ref := range refs {
		prefix := fmt.Sprintf("items[%d]", i)
		if !ref.Inline() {
			if strings.TrimSpace(ref.ID) == "" {
				vErr.Add(prefix, "item id must not be empty")
				continue
			}
			outfit.Items = append(outfit.Items, ref.ID)
			continue
		}

		item := *ref.Item
		if err := s.items.ValidateItem(&item); err != nil {
			var itemErr *apperrors.ValidationError
			if errors.As(err, &itemErr) {
				vErr.Merge(prefix+".", itemErr)
			} else {
				vErr.Add(prefix, err.Error())
			}
			continue
		}
		item.ID = uuid.New().String()
		inline = append(inline, &item)
		outfit.Items = append(outfit.Items, item.ID)
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if len(inline) == 0 {
		if err := s.repo.Create(ctx, outfit); err != nil {
			return nil, fmt.Errorf("failed to create outfit: %w", err)
		}
	} else if err := s.repo.CreateWithItems(ctx, outfit, inline); err != nil {
		return nil, fmt.Errorf("failed to create outfit with %d inline items: %w", len(inline), err)
	}

	slog.InfoContext(ctx, "outfit created", "outfit_id", outfit.ID, "items", len(outfit.Items), "inline_items", len(inline))
	recordCreated(s.recorder, "outfit")
	for _, item := range inline {
		recordCreated(s.recorder, "item")
		publishEvent(ctx, s.events, EventItemCreated, item)
	}
	publishEvent(ctx, s.events, EventOutfitCreated, outfit)
	return outfit, nil
}
