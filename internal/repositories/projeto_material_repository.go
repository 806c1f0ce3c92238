package repositories

import "allupro/internal/models"

// ProjetoMaterialRepository defines the interface for project line-item
// data access.
type ProjetoMaterialRepository interface {
	GetByProjeto(projetoID uint) ([]models.ItemComMaterial, error)
	Create(item *models.ProjetoMaterial) error
	Delete(id uint) error
}
