package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allupro/internal/models"
	"allupro/internal/repositories"
)

func TestGORMUsuarioRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewGORMUsuarioRepository(setupDB(t))

	usuario := &models.Usuario{Nome: "Ana", Email: "ana@x.com", Senha: "digest", TipoUsuario: "cliente"}
	require.NoError(t, repo.Create(usuario))
	assert.Equal(t, uint(1), usuario.ID)

	byEmail, err := repo.GetByEmail("ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", byEmail.Nome)

	byID, err := repo.GetByID(usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", byID.Email)
}

func TestGORMUsuarioRepository_DuplicateEmail(t *testing.T) {
	repo := repositories.NewGORMUsuarioRepository(setupDB(t))

	require.NoError(t, repo.Create(&models.Usuario{Nome: "Ana", Email: "ana@x.com", Senha: "digest"}))

	err := repo.Create(&models.Usuario{Nome: "Outra Ana", Email: "ana@x.com", Senha: "digest"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	// The rejected creation must not leave a second row behind.
	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestGORMUsuarioRepository_GetByEmailMiss(t *testing.T) {
	repo := repositories.NewGORMUsuarioRepository(setupDB(t))

	usuario, err := repo.GetByEmail("ninguem@x.com")
	assert.Nil(t, usuario)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUsuarioRepository_EmailMatchIsExact(t *testing.T) {
	repo := repositories.NewGORMUsuarioRepository(setupDB(t))

	require.NoError(t, repo.Create(&models.Usuario{Nome: "Ana", Email: "Ana@X.com", Senha: "digest"}))

	// Emails are matched exactly as stored.
	_, err := repo.GetByEmail("ana@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	found, err := repo.GetByEmail("Ana@X.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Nome)
}
