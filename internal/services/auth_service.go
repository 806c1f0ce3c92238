package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"allupro/internal/models"
	"allupro/internal/repositories"
)

// ErrInvalidCredentials is returned by Login when the email does not exist
// or the password does not match. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("email ou senha incorretos")

// TipoUsuarioPadrao is the role assigned to users created by registration.
const TipoUsuarioPadrao = "cliente"

// AuthService handles registration and credential verification.
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(usuarioRepo repositories.UsuarioRepository) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
	}
}

// Register hashes the password with bcrypt and inserts the user with the
// default role. A duplicate email surfaces as
// repositories.ErrDuplicateEmail.
func (s *AuthService) Register(nome, email, senha string) (*models.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usuario := &models.Usuario{
		Nome:        nome,
		Email:       email,
		Senha:       string(hash),
		TipoUsuario: TipoUsuarioPadrao,
	}
	if err := s.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Login verifies the credentials and returns the matching user. A miss on
// either the email or the password is ErrInvalidCredentials, a normal
// outcome rather than a storage fault.
func (s *AuthService) Login(email, senha string) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return usuario, nil
}
