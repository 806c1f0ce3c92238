package services

import (
	"allupro/internal/models"
	"allupro/internal/repositories"
)

// recentesLimit is the fixed number of recent projects on the dashboard.
const recentesLimit = 5

// DashboardResumo is the fixed-shape dashboard summary.
type DashboardResumo struct {
	TotalProjetos    int64                       `json:"total_projetos"`
	ProjetosAtivos   int64                       `json:"projetos_ativos"`
	TotalMateriais   int64                       `json:"total_materiais"`
	ProjetosRecentes []models.ProjetoComCliente  `json:"projetos_recentes"`
}

// DashboardService aggregates the counters and recent projects shown on the
// dashboard.
type DashboardService struct {
	projetoRepo  repositories.ProjetoRepository
	materialRepo repositories.MaterialRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(projetoRepo repositories.ProjetoRepository, materialRepo repositories.MaterialRepository) *DashboardService {
	return &DashboardService{
		projetoRepo:  projetoRepo,
		materialRepo: materialRepo,
	}
}

// Resumo builds the dashboard summary: total and active project counts, the
// material count and the five most recently created projects.
func (s *DashboardService) Resumo() (*DashboardResumo, error) {
	totalProjetos, err := s.projetoRepo.Count()
	if err != nil {
		return nil, err
	}
	projetosAtivos, err := s.projetoRepo.CountByStatus(models.StatusAtivo)
	if err != nil {
		return nil, err
	}
	totalMateriais, err := s.materialRepo.Count()
	if err != nil {
		return nil, err
	}
	recentes, err := s.projetoRepo.Recent(recentesLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardResumo{
		TotalProjetos:    totalProjetos,
		ProjetosAtivos:   projetosAtivos,
		TotalMateriais:   totalMateriais,
		ProjetosRecentes: recentes,
	}, nil
}
