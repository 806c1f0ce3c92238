package models

import "time"

// Usuario represents a registered user of the portal. Projects may reference
// a Usuario as their client, but nothing ever owns or cascades into this table.
type Usuario struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nome        string    `json:"nome" gorm:"type:varchar(255);not null" validate:"required"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Senha       string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt digest, never the plaintext
	TipoUsuario string    `json:"tipo_usuario" gorm:"type:varchar(50);default:cliente"`
	DataCriacao time.Time `json:"data_criacao" gorm:"autoCreateTime"`
}

// TableName keeps the table name used by the HTTP contract.
func (Usuario) TableName() string { return "usuarios" }
