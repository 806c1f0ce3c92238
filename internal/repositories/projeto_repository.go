package repositories

import "allupro/internal/models"

// ProjetoRepository defines the interface for project data access.
//
// Update and Delete run unconditional statements: hitting a nonexistent id
// is reported as success unless the implementation was built in strict mode,
// in which case it returns ErrNotFound.
type ProjetoRepository interface {
	GetAll() ([]models.ProjetoComCliente, error)
	GetByID(id uint) (*models.Projeto, error)
	Create(projeto *models.Projeto) error
	Update(id uint, projeto *models.Projeto) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	Recent(limit int) ([]models.ProjetoComCliente, error)
}
