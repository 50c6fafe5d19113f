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

// RentalService handles business logic related to outfit rentals.
type RentalService struct {
	repo     repositories.RentalRepository
	validate *validator.Validate
	events   EventPublisher
	recorder Recorder
}

// NewRentalService creates a new RentalService.
func NewRentalService(repo repositories.RentalRepository, events EventPublisher, recorder Recorder) *RentalService {
	return &RentalService{
		repo:     repo,
		validate: newValidator(),
		events:   events,
		recorder: recorder,
	}
}

// GetAllRentals retrieves all rentals.
func (s *RentalService) GetAllRentals(ctx context.Context) ([]models.OutfitRental, error) {
	return s.repo.GetAll(ctx)
}

// GetRentalByID retrieves a single rental. Malformed ids are reported as
// not found.
func (s *RentalService) GetRentalByID(ctx context.Context, id string) (*models.OutfitRental, error) {
	if !validID(id) {
		return nil, fmt.Errorf("rental with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// CreateRental validates and persists a booking. The user and outfit ids are
// not checked for existence. Dates are stored as supplied.
func (s *RentalService) CreateRental(ctx context.Context, rental *models.OutfitRental) error {
	if vErr := validateStruct(s.validate, rental); vErr != nil {
		return vErr
	}

	start, _ := models.ParseRentalDate(rental.RentalStartDate)
	end, _ := models.ParseRentalDate(rental.RentalEndDate)
	if end.Before(start) {
		return apperrors.NewValidationError("rentalEndDate", "must not precede rentalStartDate")
	}

	rental.ID = ""
	if err := s.repo.Create(ctx, rental); err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}

	slog.InfoContext(ctx, "rental created", "rental_id", rental.ID, "user_id", rental.UserID, "outfit_id", rental.OutfitID)
	recordCreated(s.recorder, "rental")
	publishEvent(ctx, s.events, EventRentalCreated, rental)
	return nil
}
