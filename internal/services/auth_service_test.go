package services_test

import (
	"fmt"
	"testing"

	"allupro/internal/models"
	"allupro/internal/repositories"
	"allupro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUsuarioRepository is a mock implementation of
// repositories.UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(usuario *models.Usuario) error {
	args := m.Called(usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) GetByEmail(email string) (*models.Usuario, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	service := services.NewAuthService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Usuario")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Usuario).ID = 1
	}).Return(nil).Once()

	usuario, err := service.Register("Ana", "ana@x.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, uint(1), usuario.ID)
	assert.Equal(t, "cliente", usuario.TipoUsuario)
	// The stored digest is one-way: never the plaintext, but verifiable.
	assert.NotEqual(t, "s3cret", usuario.Senha)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte("s3cret")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	service := services.NewAuthService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Usuario")).Return(repositories.ErrDuplicateEmail).Once()

	usuario, err := service.Register("Ana", "ana@x.com", "s3cret")

	assert.Nil(t, usuario)
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)
}

func hashedUser(t *testing.T, senha string) *models.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Usuario{ID: 1, Nome: "Ana", Email: "ana@x.com", Senha: string(hash), TipoUsuario: "cliente"}
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	service := services.NewAuthService(mockRepo)

	stored := hashedUser(t, "s3cret")
	mockRepo.On("GetByEmail", "ana@x.com").Return(stored, nil).Once()

	usuario, err := service.Login("ana@x.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, stored, usuario)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	service := services.NewAuthService(mockRepo)

	mockRepo.On("GetByEmail", "ana@x.com").Return(hashedUser(t, "s3cret"), nil).Once()

	usuario, err := service.Login("ana@x.com", "errada")

	assert.Nil(t, usuario)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	service := services.NewAuthService(mockRepo)

	mockRepo.On("GetByEmail", "ninguem@x.com").Return(nil, repositories.ErrNotFound).Once()

	usuario, err := service.Login("ninguem@x.com", "s3cret")

	assert.Nil(t, usuario)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginStorageFault(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	service := services.NewAuthService(mockRepo)

	mockRepo.On("GetByEmail", "ana@x.com").Return(nil, fmt.Errorf("database error")).Once()

	usuario, err := service.Login("ana@x.com", "s3cret")

	assert.Nil(t, usuario)
	// A backend failure must not be disguised as bad credentials.
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}
