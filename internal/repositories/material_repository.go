package repositories

import "allupro/internal/models"

// MaterialRepository defines the interface for material catalog data access.
// Update and Delete follow the same strict/non-strict contract as
// ProjetoRepository.
type MaterialRepository interface {
	GetAll() ([]models.Material, error)
	GetByID(id uint) (*models.Material, error)
	Create(material *models.Material) error
	Update(id uint, material *models.Material) error
	Delete(id uint) error
	Count() (int64, error)
}
