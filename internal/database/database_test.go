package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allupro/internal/database"
)

func TestOpenSQLiteMigratesSchema(t *testing.T) {
	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    "file:database_open_test?mode=memory&cache=shared",
	})
	require.NoError(t, err)

	for _, table := range []string{"usuarios", "projetos", "materiais", "projeto_materiais"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestOpenDefaultsToSQLite(t *testing.T) {
	db, err := database.Open(database.Config{
		DSN: "file:database_default_test?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("usuarios"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(database.Config{Driver: "oracle", DSN: "whatever"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
