package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a named in-memory SQLite database with the schema applied.
// Shared cache keeps the database alive across the pooled connections.
func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
