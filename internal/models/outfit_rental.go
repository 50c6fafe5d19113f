package models

import (
	"fmt"
	"strings"
	"time"
)

// OutfitRental is a booking of an outfit by a user over a date range.
// UserID and OutfitID are weak references.
type OutfitRental struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `json:"userId" gorm:"type:varchar(36);index" validate:"required"`
	OutfitID        string    `json:"outfitId" gorm:"type:varchar(36);index" validate:"required"`
	RentalStartDate string    `json:"rentalStartDate" gorm:"type:varchar(40)" validate:"required,rentaldate"`
	RentalEndDate   string    `json:"rentalEndDate" gorm:"type:varchar(40)" validate:"required,rentaldate"`
	CreatedAt       time.Time `json:"createdAt"`
}

var rentalDateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	time.RFC3339,
}

// ParseRentalDate parses a rental date in any of the accepted layouts.
func ParseRentalDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range rentalDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised rental date %q", value)
}
