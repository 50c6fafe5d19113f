package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// newValidator returns a validator that reports fields by their JSON names
// and knows the rental date formats.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("rentaldate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseRentalDate(fl.Field().String())
		return err == nil
	})
	return v
}

// validateStruct runs the struct tags and converts failures into a
// ValidationError.
func validateStruct(v *validator.Validate, s any) *apperrors.ValidationError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	vErr := &apperrors.ValidationError{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, e := range fieldErrs {
			vErr.Add(e.Field(), fmt.Sprintf("failed on the '%s' tag", e.Tag()))
		}
		return vErr
	}
	vErr.Add("body", err.Error())
	return vErr
}

// validID reports whether id has the shape of a store-assigned identifier.
// Malformed ids can never match a record.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
