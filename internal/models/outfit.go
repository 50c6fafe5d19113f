package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Outfit is a named bundle of items. Items holds weak references: the ids
// are not checked against the item table and deleting an item does not
// cascade.
type Outfit struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Items     []string  `json:"items" gorm:"serializer:json;type:text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemRef is one entry of an outfit creation request: either the id of an
// existing item or an inline item definition.
type ItemRef struct {
	ID   string
	Item *Item
}

// Inline reports whether the reference carries an item definition.
func (r ItemRef) Inline() bool {
	return r.Item != nil
}

// UnmarshalJSON accepts a JSON string (an item id) or a JSON object (an item).
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("outfit item must not be null")
	}

	if data[0] == '{' {
		var item Item
		if err := json.Unmarshal(data, &item); err != nil {
			return fmt.Errorf("invalid inline item: %w", err)
		}
		r.ID, r.Item = "", &item
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("outfit item must be an item id or an item object: %w", err)
	}
	r.ID, r.Item = id, nil
	return nil
}

// MarshalJSON writes the reference back in the shape it was read.
func (r ItemRef) MarshalJSON() ([]byte, error) {
	if r.Item != nil {
		return json.Marshal(r.Item)
	}
	return json.Marshal(r.ID)
}
