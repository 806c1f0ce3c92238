package services_test

import (
	"fmt"
	"testing"

	"allupro/internal/models"
	"allupro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Resumo(t *testing.T) {
	projetoRepo := new(MockProjetoRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewDashboardService(projetoRepo, materialRepo)

	nome := "Ana"
	recentes := []models.ProjetoComCliente{
		{ID: 3, Nome: "Cozinha", TipoProjeto: "reforma", Status: "ativo"},
		{ID: 2, Nome: "Garagem", TipoProjeto: "construcao", Status: "concluido", ClienteNome: &nome},
	}

	projetoRepo.On("Count").Return(int64(3), nil).Once()
	projetoRepo.On("CountByStatus", models.StatusAtivo).Return(int64(2), nil).Once()
	materialRepo.On("Count").Return(int64(7), nil).Once()
	projetoRepo.On("Recent", 5).Return(recentes, nil).Once()

	resumo, err := service.Resumo()

	require.NoError(t, err)
	assert.Equal(t, int64(3), resumo.TotalProjetos)
	assert.Equal(t, int64(2), resumo.ProjetosAtivos)
	assert.Equal(t, int64(7), resumo.TotalMateriais)
	assert.Equal(t, recentes, resumo.ProjetosRecentes)
	projetoRepo.AssertExpectations(t)
	materialRepo.AssertExpectations(t)
}

func TestDashboardService_ResumoPropagatesFailure(t *testing.T) {
	projetoRepo := new(MockProjetoRepository)
	materialRepo := new(MockMaterialRepository)
	service := services.NewDashboardService(projetoRepo, materialRepo)

	projetoRepo.On("Count").Return(int64(0), fmt.Errorf("database error")).Once()

	resumo, err := service.Resumo()

	assert.Nil(t, resumo)
	assert.Error(t, err)
	projetoRepo.AssertExpectations(t)
}
