package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"outfitrental/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	var empty *apperrors.ValidationError
	assert.False(t, empty.HasErrors())
	assert.Equal(t, "validation failed", empty.Error())

	vErr := apperrors.NewValidationError("name", "is required")
	vErr.Add("email", "is invalid")
	assert.True(t, vErr.HasErrors())
	assert.Equal(t, "validation failed: email: is invalid; name: is required", vErr.Error())

	outer := &apperrors.ValidationError{}
	outer.Merge("items[1].", vErr)
	assert.Equal(t, "is required", outer.FieldErrors["items[1].name"])

	wrapped := fmt.Errorf("create item: %w", vErr)
	assert.True(t, apperrors.IsValidation(wrapped))
	assert.False(t, apperrors.IsStore(wrapped))
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, apperrors.Store("create item", nil))

	cause := errors.New("disk full")
	err := apperrors.Store("create item", cause)
	assert.True(t, apperrors.IsStore(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store: create item: disk full", err.Error())
}
