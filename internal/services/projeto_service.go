package services

import (
	"encoding/json"
	"log"
	"time"

	"allupro/internal/models"
	"allupro/internal/repositories"
	"allupro/pkg/rabbitmq"
)

// ProjetoService handles business logic related to projects.
type ProjetoService struct {
	repo     repositories.ProjetoRepository
	mqClient *rabbitmq.Client // optional, nil disables event publication
}

// NewProjetoService creates a new ProjetoService. mqClient may be nil, in
// which case no events are published.
func NewProjetoService(repo repositories.ProjetoRepository, mqClient *rabbitmq.Client) *ProjetoService {
	return &ProjetoService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProjetos retrieves all projects, newest first, with the client name
// denormalized.
func (s *ProjetoService) GetAllProjetos() ([]models.ProjetoComCliente, error) {
	return s.repo.GetAll()
}

// CreateProjeto creates a new project. New projects always start in the
// active status regardless of the request payload.
func (s *ProjetoService) CreateProjeto(projeto *models.Projeto) error {
	projeto.Status = models.StatusAtivo
	if err := s.repo.Create(projeto); err != nil {
		return err
	}
	s.publishEvento("projeto.criado", projeto.ID, projeto.Nome)
	return nil
}

// UpdateProjeto replaces the mutable fields of the project with the given
// id. Whether a nonexistent id is an error depends on the repository's
// strict mode.
func (s *ProjetoService) UpdateProjeto(id uint, projeto *models.Projeto) error {
	return s.repo.Update(id, projeto)
}

// DeleteProjeto deletes a project by its ID.
func (s *ProjetoService) DeleteProjeto(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvento("projeto.removido", id, "")
	return nil
}

// publishEvento emits a project audit event. Publication is best effort: a
// missing client or a broker failure never fails the request.
func (s *ProjetoService) publishEvento(tipo string, projetoID uint, nome string) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"tipo":       tipo,
		"projeto_id": projetoID,
		"nome":       nome,
		"ocorrido":   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("Failed to marshal project event: %v", err)
		return
	}
	if err := s.mqClient.PublishProjetoEvent(body); err != nil {
		log.Printf("Warning: failed to publish %s event for project %d: %v", tipo, projetoID, err)
	}
}
