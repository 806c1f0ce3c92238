package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"allupro/internal/models"
)

// listagemProjetos selects every project column plus the denormalized client
// name. The left join keeps projects whose client is null or points at a
// deleted user; their cliente_nome scans as null.
const listagemProjetos = "projetos.*, usuarios.nome AS cliente_nome"

// GORMProjetoRepository is a GORM implementation of ProjetoRepository.
type GORMProjetoRepository struct {
	db     *gorm.DB
	strict bool
}

// NewGORMProjetoRepository creates a new instance of GORMProjetoRepository.
// With strict enabled, Update and Delete report ErrNotFound when the id does
// not exist instead of silently succeeding.
func NewGORMProjetoRepository(db *gorm.DB, strict bool) *GORMProjetoRepository {
	return &GORMProjetoRepository{
		db:     db,
		strict: strict,
	}
}

// GetAll retrieves all projects, newest first. Ties on the creation
// timestamp fall back to the id so the order stays deterministic.
func (r *GORMProjetoRepository) GetAll() ([]models.ProjetoComCliente, error) {
	projetos := make([]models.ProjetoComCliente, 0)
	err := r.db.Table("projetos").
		Select(listagemProjetos).
		Joins("LEFT JOIN usuarios ON usuarios.id = projetos.cliente_id").
		Order("projetos.data_criacao DESC, projetos.id DESC").
		Scan(&projetos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projetos, nil
}

// GetByID retrieves a single project by its ID.
func (r *GORMProjetoRepository) GetByID(id uint) (*models.Projeto, error) {
	var projeto models.Projeto
	if err := r.db.First(&projeto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by ID %d: %w", id, err)
	}
	return &projeto, nil
}

// Create inserts a new project and assigns its id.
func (r *GORMProjetoRepository) Create(projeto *models.Projeto) error {
	if err := r.db.Create(projeto).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the project, writing NULL for
// optional fields that carry no value. The client reference and the creation
// timestamp are never touched by an update.
func (r *GORMProjetoRepository) Update(id uint, projeto *models.Projeto) error {
	updates := map[string]interface{}{
		"nome":           projeto.Nome,
		"descricao":      projeto.Descricao,
		"tipo_projeto":   projeto.TipoProjeto,
		"status":         projeto.Status,
		"data_inicio":    projeto.DataInicio,
		"data_prevista":  projeto.DataPrevista,
		"valor_estimado": projeto.ValorEstimado,
		"observacoes":    projeto.Observacoes,
	}

	res := r.db.Model(&models.Projeto{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update project %d: %w", id, res.Error)
	}
	if r.strict && res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project by its ID. Dependent line items are left alone.
func (r *GORMProjetoRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Projeto{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, res.Error)
	}
	if r.strict && res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of projects.
func (r *GORMProjetoRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Projeto{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return total, nil
}

// CountByStatus returns the number of projects currently in the given status.
func (r *GORMProjetoRepository) CountByStatus(status string) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Projeto{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects by status: %w", err)
	}
	return total, nil
}

// Recent retrieves the most recently created projects, newest first, with
// the same left-join shape as GetAll.
func (r *GORMProjetoRepository) Recent(limit int) ([]models.ProjetoComCliente, error) {
	projetos := make([]models.ProjetoComCliente, 0)
	err := r.db.Table("projetos").
		Select(listagemProjetos).
		Joins("LEFT JOIN usuarios ON usuarios.id = projetos.cliente_id").
		Order("projetos.data_criacao DESC, projetos.id DESC").
		Limit(limit).
		Scan(&projetos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent projects: %w", err)
	}
	return projetos, nil
}
