package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"allupro/internal/models"
)

// GORMMaterialRepository is a GORM implementation of MaterialRepository.
type GORMMaterialRepository struct {
	db     *gorm.DB
	strict bool
}

// NewGORMMaterialRepository creates a new instance of GORMMaterialRepository.
func NewGORMMaterialRepository(db *gorm.DB, strict bool) *GORMMaterialRepository {
	return &GORMMaterialRepository{
		db:     db,
		strict: strict,
	}
}

// GetAll retrieves all materials ordered by name.
func (r *GORMMaterialRepository) GetAll() ([]models.Material, error) {
	materiais := make([]models.Material, 0)
	if err := r.db.Order("nome ASC").Find(&materiais).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materiais, nil
}

// GetByID retrieves a single material by its ID.
func (r *GORMMaterialRepository) GetByID(id uint) (*models.Material, error) {
	var material models.Material
	if err := r.db.First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get material by ID %d: %w", id, err)
	}
	return &material, nil
}

// Create inserts a new material and assigns its id.
func (r *GORMMaterialRepository) Create(material *models.Material) error {
	if err := r.db.Create(material).Error; err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the material, writing NULL for
// optional fields that carry no value.
func (r *GORMMaterialRepository) Update(id uint, material *models.Material) error {
	updates := map[string]interface{}{
		"nome":           material.Nome,
		"tipo_material":  material.TipoMaterial,
		"especificacoes": material.Especificacoes,
		"preco_unitario": material.PrecoUnitario,
		"estoque_atual":  material.EstoqueAtual,
		"unidade_medida": material.UnidadeMedida,
		"fornecedor":     material.Fornecedor,
	}

	res := r.db.Model(&models.Material{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update material %d: %w", id, res.Error)
	}
	if r.strict && res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a material by its ID. Dependent line items are left alone.
func (r *GORMMaterialRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Material{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete material %d: %w", id, res.Error)
	}
	if r.strict && res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of materials.
func (r *GORMMaterialRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Material{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count materials: %w", err)
	}
	return total, nil
}
