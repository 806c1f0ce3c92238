package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"allupro/internal/models"
)

// setupDB opens a fresh in-memory SQLite database for one test. The DSN is
// keyed by the test name so the shared cache never bleeds between tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.Projeto{},
		&models.Material{},
		&models.ProjetoMaterial{},
	))
	return db
}
