package services_test

import (
	"context"
	"errors"
	"testing"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"
	"outfitrental/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_GetAllItems(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil, nil)

	expected := []models.Item{
		{ID: "1", Name: "Blouse", QuantityInStock: 4},
		{ID: "2", Name: "Skirt", QuantityInStock: 2},
	}
	mockRepo.On("GetAll", ctx).Return(expected, nil).Once()

	items, err := service.GetAllItems(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestItemService_GetItemByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil, nil)

	id := uuid.New().String()
	expected := &models.Item{ID: id, Name: "Blouse"}
	mockRepo.On("GetByID", ctx, id).Return(expected, nil).Once()

	item, err := service.GetItemByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, expected, item)

	// malformed ids never reach the store
	item, err = service.GetItemByID(ctx, "not-an-id")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestItemService_CreateItem(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	publisher := new(MockPublisher)
	recorder := new(MockRecorder)
	service := services.NewItemService(mockRepo, publisher, recorder)

	item := &models.Item{ID: "client-chosen", Name: "Blouse", Size: "S", CollectionDate: 2019, Colour: "red", QuantityInStock: 4}
	mockRepo.On("Create", ctx, mock.MatchedBy(func(i *models.Item) bool { return i.ID == "" })).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Item).ID = "generated" }).
		Return(nil).Once()
	recorder.On("EntityCreated", "item").Once()
	publisher.On("Publish", ctx, services.EventItemCreated, item).Return(errors.New("broker down")).Once()

	err := service.CreateItem(ctx, item)
	assert.NoError(t, err, "publishing failures must not fail the write")
	assert.Equal(t, "generated", item.ID)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestItemService_CreateItemValidation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil, nil)

	err := service.CreateItem(ctx, &models.Item{Name: "Blouse", QuantityInStock: -1})
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "quantityInStock")
	assert.Len(t, vErr.FieldErrors, 1)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestItemService_CreateItemWithoutName(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil, nil)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Item")).Return(nil).Once()

	// only the stock count is constrained; everything else is optional
	require.NoError(t, service.CreateItem(ctx, &models.Item{Size: "S"}))
	mockRepo.AssertExpectations(t)
}

func TestItemService_CreateItemStoreFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil, nil)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Item")).
		Return(apperrors.Store("create item", errors.New("database error"))).Once()

	err := service.CreateItem(ctx, &models.Item{Name: "Blouse"})
	assert.True(t, apperrors.IsStore(err))
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestItemService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockItemRepository)
	service := services.NewItemService(mockRepo, nil, nil)

	id := uuid.New().String()
	mockRepo.On("Delete", ctx, id).Return(nil).Twice()

	assert.NoError(t, service.DeleteItem(ctx, id))
	assert.NoError(t, service.DeleteItem(ctx, id))
	assert.NoError(t, service.DeleteItem(ctx, "not-an-id"))
	mockRepo.AssertExpectations(t)

	failing := new(MockItemRepository)
	failing.On("Delete", ctx, id).Return(apperrors.Store("delete item", errors.New("database error"))).Once()
	err := services.NewItemService(failing, nil, nil).DeleteItem(ctx, id)
	assert.True(t, apperrors.IsStore(err))
}
