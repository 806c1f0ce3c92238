package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"allupro/internal/models"
)

// GORMProjetoMaterialRepository is a GORM implementation of
// ProjetoMaterialRepository.
type GORMProjetoMaterialRepository struct {
	db     *gorm.DB
	strict bool
}

// NewGORMProjetoMaterialRepository creates a new instance of
// GORMProjetoMaterialRepository.
func NewGORMProjetoMaterialRepository(db *gorm.DB, strict bool) *GORMProjetoMaterialRepository {
	return &GORMProjetoMaterialRepository{
		db:     db,
		strict: strict,
	}
}

// GetByProjeto retrieves the line items of a project with the material name
// denormalized. Items whose material was deleted still appear with a null
// material_nome; the join table carries no cascade.
func (r *GORMProjetoMaterialRepository) GetByProjeto(projetoID uint) ([]models.ItemComMaterial, error) {
	itens := make([]models.ItemComMaterial, 0)
	err := r.db.Table("projeto_materiais").
		Select("projeto_materiais.*, materiais.nome AS material_nome").
		Joins("LEFT JOIN materiais ON materiais.id = projeto_materiais.material_id").
		Where("projeto_materiais.projeto_id = ?", projetoID).
		Order("projeto_materiais.id ASC").
		Scan(&itens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list line items for project %d: %w", projetoID, err)
	}
	return itens, nil
}

// Create inserts a new line item and assigns its id.
func (r *GORMProjetoMaterialRepository) Create(item *models.ProjetoMaterial) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create line item: %w", err)
	}
	return nil
}

// Delete removes a line item by its ID.
func (r *GORMProjetoMaterialRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ProjetoMaterial{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete line item %d: %w", id, res.Error)
	}
	if r.strict && res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
