package repositories

import "allupro/internal/models"

// UsuarioRepository defines the interface for user data access.
type UsuarioRepository interface {
	Create(usuario *models.Usuario) error
	GetByEmail(email string) (*models.Usuario, error)
	GetByID(id uint) (*models.Usuario, error)
	Count() (int64, error)
}
