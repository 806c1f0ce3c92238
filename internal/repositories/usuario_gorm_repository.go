package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"allupro/internal/models"
)

// GORMUsuarioRepository is a GORM implementation of UsuarioRepository.
type GORMUsuarioRepository struct {
	db *gorm.DB
}

// NewGORMUsuarioRepository creates a new instance of GORMUsuarioRepository.
func NewGORMUsuarioRepository(db *gorm.DB) *GORMUsuarioRepository {
	return &GORMUsuarioRepository{
		db: db,
	}
}

// Create inserts a new user. A violation of the unique email index is
// reported as ErrDuplicateEmail; everything else is a storage fault.
func (r *GORMUsuarioRepository) Create(usuario *models.Usuario) error {
	if err := r.db.Create(usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email. The email is matched exactly
// as stored; a miss is ErrNotFound, not a fault.
func (r *GORMUsuarioRepository) GetByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.First(&usuario, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &usuario, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUsuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &usuario, nil
}

// Count returns the total number of users.
func (r *GORMUsuarioRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Usuario{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}
