package services

import (
	"allupro/internal/models"
	"allupro/internal/repositories"
)

// MaterialService handles business logic related to the material catalog.
type MaterialService struct {
	repo repositories.MaterialRepository
}

// NewMaterialService creates a new MaterialService.
func NewMaterialService(repo repositories.MaterialRepository) *MaterialService {
	return &MaterialService{
		repo: repo,
	}
}

// GetAllMateriais retrieves all materials ordered by name.
func (s *MaterialService) GetAllMateriais() ([]models.Material, error) {
	return s.repo.GetAll()
}

// CreateMaterial creates a new material, applying the catalog defaults for
// fields the caller left empty.
func (s *MaterialService) CreateMaterial(material *models.Material) error {
	if material.UnidadeMedida == "" {
		material.UnidadeMedida = models.UnidadePadrao
	}
	return s.repo.Create(material)
}

// UpdateMaterial replaces the mutable fields of the material with the given
// id.
func (s *MaterialService) UpdateMaterial(id uint, material *models.Material) error {
	if material.UnidadeMedida == "" {
		material.UnidadeMedida = models.UnidadePadrao
	}
	return s.repo.Update(id, material)
}

// DeleteMaterial deletes a material by its ID.
func (s *MaterialService) DeleteMaterial(id uint) error {
	return s.repo.Delete(id)
}
