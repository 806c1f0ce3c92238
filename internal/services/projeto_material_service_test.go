package services_test

import (
	"testing"

	"allupro/internal/models"
	"allupro/internal/repositories"
	"allupro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjetoMaterialRepository is a mock implementation of
// repositories.ProjetoMaterialRepository.
type MockProjetoMaterialRepository struct {
	mock.Mock
}

func (m *MockProjetoMaterialRepository) GetByProjeto(projetoID uint) ([]models.ItemComMaterial, error) {
	args := m.Called(projetoID)
	return args.Get(0).([]models.ItemComMaterial), args.Error(1)
}

func (m *MockProjetoMaterialRepository) Create(item *models.ProjetoMaterial) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockProjetoMaterialRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProjetoMaterialService_AddItemWithExplicitPrice(t *testing.T) {
	itemRepo := new(MockProjetoMaterialRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewProjetoMaterialService(itemRepo, materialRepo)

	itemRepo.On("Create", mock.AnythingOfType("*models.ProjetoMaterial")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.ProjetoMaterial).ID = 1
	}).Return(nil).Once()

	preco := 10.0
	item, err := service.AddItem(1, 2, 4, &preco)

	require.NoError(t, err)
	require.NotNil(t, item.Subtotal)
	assert.Equal(t, 40.0, *item.Subtotal)
	assert.Equal(t, 10.0, *item.PrecoUnitario)
	// The catalog is not consulted when the caller fixed the price.
	materialRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	itemRepo.AssertExpectations(t)
}

func TestProjetoMaterialService_AddItemSnapshotsCatalogPrice(t *testing.T) {
	itemRepo := new(MockProjetoMaterialRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewProjetoMaterialService(itemRepo, materialRepo)

	preco := 32.5
	materialRepo.On("GetByID", uint(2)).Return(&models.Material{ID: 2, Nome: "Cimento", PrecoUnitario: &preco}, nil).Once()
	itemRepo.On("Create", mock.AnythingOfType("*models.ProjetoMaterial")).Return(nil).Once()

	item, err := service.AddItem(1, 2, 2, nil)

	require.NoError(t, err)
	require.NotNil(t, item.Subtotal)
	assert.Equal(t, 65.0, *item.Subtotal)
	assert.Equal(t, 32.5, *item.PrecoUnitario)
	materialRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestProjetoMaterialService_AddItemWithoutAnyPrice(t *testing.T) {
	itemRepo := new(MockProjetoMaterialRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewProjetoMaterialService(itemRepo, materialRepo)

	materialRepo.On("GetByID", uint(2)).Return(&models.Material{ID: 2, Nome: "Entulho"}, nil).Once()
	itemRepo.On("Create", mock.AnythingOfType("*models.ProjetoMaterial")).Return(nil).Once()

	item, err := service.AddItem(1, 2, 3, nil)

	require.NoError(t, err)
	assert.Nil(t, item.PrecoUnitario)
	assert.Nil(t, item.Subtotal)
	materialRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestProjetoMaterialService_AddItemUnknownMaterial(t *testing.T) {
	itemRepo := new(MockProjetoMaterialRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewProjetoMaterialService(itemRepo, materialRepo)

	materialRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()

	item, err := service.AddItem(1, 99, 1, nil)

	assert.Nil(t, item)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	itemRepo.AssertNotCalled(t, "Create", mock.Anything)
	materialRepo.AssertExpectations(t)
}

func TestProjetoMaterialService_RemoveItem(t *testing.T) {
	itemRepo := new(MockProjetoMaterialRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewProjetoMaterialService(itemRepo, materialRepo)

	itemRepo.On("Delete", uint(5)).Return(nil).Once()

	assert.NoError(t, service.RemoveItem(5))
	itemRepo.AssertExpectations(t)
}
