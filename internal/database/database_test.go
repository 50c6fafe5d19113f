package database_test

import (
	"testing"

	"outfitrental/internal/database"
	"outfitrental/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigratesAllTables(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, "file:database_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	for _, model := range []any{&models.Item{}, &models.Outfit{}, &models.User{}, &models.OutfitRental{}} {
		assert.True(t, db.Migrator().HasTable(model), "%T table missing", model)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}
