package services

import (
	"allupro/internal/models"
	"allupro/internal/repositories"
)

// ProjetoMaterialService handles the line items associating materials to
// projects. The subtotal is computed here, in one place, at write time.
type ProjetoMaterialService struct {
	itemRepo     repositories.ProjetoMaterialRepository
	materialRepo repositories.MaterialRepository
}

// NewProjetoMaterialService creates a new ProjetoMaterialService.
func NewProjetoMaterialService(itemRepo repositories.ProjetoMaterialRepository, materialRepo repositories.MaterialRepository) *ProjetoMaterialService {
	return &ProjetoMaterialService{
		itemRepo:     itemRepo,
		materialRepo: materialRepo,
	}
}

// GetItensDoProjeto retrieves the line items of a project.
func (s *ProjetoMaterialService) GetItensDoProjeto(projetoID uint) ([]models.ItemComMaterial, error) {
	return s.itemRepo.GetByProjeto(projetoID)
}

// AddItem creates a line item. When the caller gives no unit price, the
// current catalog price of the material is snapshotted; the subtotal is
// price times quantity, or null when no price is known.
func (s *ProjetoMaterialService) AddItem(projetoID, materialID uint, quantidade int, precoUnitario *float64) (*models.ProjetoMaterial, error) {
	preco := precoUnitario
	if preco == nil {
		material, err := s.materialRepo.GetByID(materialID)
		if err != nil {
			return nil, err
		}
		preco = material.PrecoUnitario
	}

	var subtotal *float64
	if preco != nil {
		valor := *preco * float64(quantidade)
		subtotal = &valor
	}

	item := &models.ProjetoMaterial{
		ProjetoID:     projetoID,
		MaterialID:    materialID,
		Quantidade:    quantidade,
		PrecoUnitario: preco,
		Subtotal:      subtotal,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a line item by its ID.
func (s *ProjetoMaterialService) RemoveItem(id uint) error {
	return s.itemRepo.Delete(id)
}
