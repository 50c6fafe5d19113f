package services_test

import (
	"context"
	"testing"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"
	"outfitrental/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRental() *models.OutfitRental {
	return &models.OutfitRental{
		UserID:          uuid.New().String(),
		OutfitID:        uuid.New().String(),
		RentalStartDate: "2020/02/10",
		RentalEndDate:   "2020/02/12",
	}
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRentalRepository)
	publisher := new(MockPublisher)
	recorder := new(MockRecorder)
	service := services.NewRentalService(mockRepo, publisher, recorder)

	rental := validRental()
	mockRepo.On("Create", ctx, rental).Return(nil).Once()
	publisher.On("Publish", ctx, services.EventRentalCreated, rental).Return(nil).Once()
	recorder.On("EntityCreated", "rental").Once()

	require.NoError(t, service.CreateRental(ctx, rental))
	assert.Equal(t, "2020/02/10", rental.RentalStartDate)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestRentalService_CreateRentalSameDay(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRentalRepository)
	service := services.NewRentalService(mockRepo, nil, nil)

	rental := validRental()
	rental.RentalEndDate = "2020-02-10"
	mockRepo.On("Create", ctx, rental).Return(nil).Once()

	assert.NoError(t, service.CreateRental(ctx, rental))
	mockRepo.AssertExpectations(t)
}

func TestRentalService_CreateRentalValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *models.OutfitRental)
		field  string
	}{
		{"missing user", func(r *models.OutfitRental) { r.UserID = "" }, "userId"},
		{"missing outfit", func(r *models.OutfitRental) { r.OutfitID = "" }, "outfitId"},
		{"unparseable start", func(r *models.OutfitRental) { r.RentalStartDate = "soon" }, "rentalStartDate"},
		{"missing end", func(r *models.OutfitRental) { r.RentalEndDate = "" }, "rentalEndDate"},
		{"end before start", func(r *models.OutfitRental) { r.RentalEndDate = "2020/02/01" }, "rentalEndDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRentalRepository)
			service := services.NewRentalService(mockRepo, nil, nil)

			rental := validRental()
			tt.mutate(rental)
			err := service.CreateRental(ctx, rental)

			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.FieldErrors, tt.field)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRentalService_GetRentals(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRentalRepository)
	service := services.NewRentalService(mockRepo, nil, nil)

	rental := validRental()
	rental.ID = uuid.New().String()
	mockRepo.On("GetAll", ctx).Return([]models.OutfitRental{*rental}, nil).Once()
	mockRepo.On("GetByID", ctx, rental.ID).Return(rental, nil).Once()

	all, err := service.GetAllRentals(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	found, err := service.GetRentalByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.Equal(t, rental, found)

	_, err = service.GetRentalByID(ctx, "12")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
