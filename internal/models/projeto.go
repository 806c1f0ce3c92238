package models

import "time"

// Projeto represents a construction or renovation project. ClienteID is a
// weak reference to a Usuario: it may be null, and listing uses a left join
// so projects without a client still appear.
type Projeto struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Nome          string    `json:"nome" gorm:"type:varchar(255);not null" validate:"required"`
	Descricao     *string   `json:"descricao"`
	ClienteID     *uint     `json:"cliente_id"`
	TipoProjeto   string    `json:"tipo_projeto" gorm:"type:varchar(100);not null" validate:"required"`
	Status        string    `json:"status" gorm:"type:varchar(50);default:ativo"`
	DataInicio    *string   `json:"data_inicio"`
	DataPrevista  *string   `json:"data_prevista"`
	ValorEstimado *float64  `json:"valor_estimado"`
	Observacoes   *string   `json:"observacoes"`
	DataCriacao   time.Time `json:"data_criacao" gorm:"autoCreateTime"`
}

// TableName keeps the table name used by the HTTP contract.
func (Projeto) TableName() string { return "projetos" }

// StatusAtivo is the status assigned to new projects. Status is free-form on
// update; no enumeration is enforced.
const StatusAtivo = "ativo"

// ProjetoComCliente is the listing shape: every Projeto column plus the
// client name denormalized through a left join with usuarios. ClienteNome is
// null when the project has no client or the referenced user no longer exists.
type ProjetoComCliente struct {
	ID            uint      `json:"id"`
	Nome          string    `json:"nome"`
	Descricao     *string   `json:"descricao"`
	ClienteID     *uint     `json:"cliente_id"`
	TipoProjeto   string    `json:"tipo_projeto"`
	Status        string    `json:"status"`
	DataInicio    *string   `json:"data_inicio"`
	DataPrevista  *string   `json:"data_prevista"`
	ValorEstimado *float64  `json:"valor_estimado"`
	Observacoes   *string   `json:"observacoes"`
	DataCriacao   time.Time `json:"data_criacao"`
	ClienteNome   *string   `json:"cliente_nome"`
}
