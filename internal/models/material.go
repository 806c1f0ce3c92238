package models

import "time"

// Material represents an inventory item in the materials catalog.
type Material struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Nome          string    `json:"nome" gorm:"type:varchar(255);not null" validate:"required"`
	TipoMaterial  string    `json:"tipo_material" gorm:"type:varchar(100);not null" validate:"required"`
	Especificacoes *string  `json:"especificacoes"`
	PrecoUnitario *float64  `json:"preco_unitario"`
	EstoqueAtual  int       `json:"estoque_atual" gorm:"default:0"`
	UnidadeMedida string    `json:"unidade_medida" gorm:"type:varchar(20);default:un"`
	Fornecedor    *string   `json:"fornecedor"`
	DataCriacao   time.Time `json:"data_criacao" gorm:"autoCreateTime"`
}

// TableName keeps the table name used by the HTTP contract.
func (Material) TableName() string { return "materiais" }

// UnidadePadrao is the unit of measure assigned when none is given.
const UnidadePadrao = "un"
