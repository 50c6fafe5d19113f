package models_test

import (
	"encoding/json"
	"testing"

	"outfitrental/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRef_UnmarshalJSON(t *testing.T) {
	var req struct {
		Name  string           `json:"name"`
		Items []models.ItemRef `json:"items"`
	}
	body := `{"name":"Gala","items":["bv45ft",{"name":"Blouse","size":"S","collectionDate":2019,"colour":"red","quantityInStock":4}]}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Len(t, req.Items, 2)

	assert.False(t, req.Items[0].Inline())
	assert.Equal(t, "bv45ft", req.Items[0].ID)

	require.True(t, req.Items[1].Inline())
	assert.Equal(t, "Blouse", req.Items[1].Item.Name)
	assert.Equal(t, 2019, req.Items[1].Item.CollectionDate)
	assert.Equal(t, 4, req.Items[1].Item.QuantityInStock)
}

func TestItemRef_UnmarshalJSONRejectsBadShapes(t *testing.T) {
	for _, body := range []string{
		`[12]`,
		`[null]`,
		`[{"name":"Blouse","quantityInStock":"four"}]`,
	} {
		var refs []models.ItemRef
		assert.Error(t, json.Unmarshal([]byte(body), &refs), body)
	}
}

func TestItemRef_MarshalJSON(t *testing.T) {
	refs := []models.ItemRef{
		{ID: "abc"},
		{Item: &models.Item{Name: "Skirt"}},
	}
	out, err := json.Marshal(refs)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"abc"`)
	assert.Contains(t, string(out), `"name":"Skirt"`)
}

func TestParseRentalDate(t *testing.T) {
	for _, value := range []string{"2020/02/10", "2020-02-10", "2020-02-10T10:00:00Z"} {
		parsed, err := models.ParseRentalDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, 2020, parsed.Year())
		assert.Equal(t, 10, parsed.Day())
	}

	_, err := models.ParseRentalDate("next tuesday")
	assert.Error(t, err)
}

func TestUserPasswordIsNotSerialised(t *testing.T) {
	out, err := json.Marshal(models.User{ID: "1", Email: "a@b.com", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hash")
}
