package models

// ProjetoMaterial is a line item tying a material to a project with a
// quantity, a unit-price snapshot taken at association time and the computed
// subtotal. Deleting a project or material does not cascade into this table.
type ProjetoMaterial struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	ProjetoID     uint     `json:"projeto_id"`
	MaterialID    uint     `json:"material_id"`
	Quantidade    int      `json:"quantidade" gorm:"not null" validate:"required,gt=0"`
	PrecoUnitario *float64 `json:"preco_unitario"`
	Subtotal      *float64 `json:"subtotal"`
}

// TableName keeps the table name used by the HTTP contract.
func (ProjetoMaterial) TableName() string { return "projeto_materiais" }

// ItemComMaterial is the listing shape for a project's line items: the line
// item plus the material name denormalized through a left join.
type ItemComMaterial struct {
	ID            uint     `json:"id"`
	ProjetoID     uint     `json:"projeto_id"`
	MaterialID    uint     `json:"material_id"`
	Quantidade    int      `json:"quantidade"`
	PrecoUnitario *float64 `json:"preco_unitario"`
	Subtotal      *float64 `json:"subtotal"`
	MaterialNome  *string  `json:"material_nome"`
}
