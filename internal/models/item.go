package models

import "time"

// Item is a stock-keeping record for a single piece of clothing. Only the
// stock count is constrained; the other attributes are free-form.
type Item struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string    `json:"name" gorm:"type:text"`
	Size            string    `json:"size" gorm:"type:text"`
	CollectionDate  int       `json:"collectionDate"`
	Colour          string    `json:"colour" gorm:"type:text"`
	QuantityInStock int       `json:"quantityInStock" validate:"gte=0"`
	CreatedAt       time.Time `json:"createdAt"`
}
