package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"allupro/internal/models"
	"allupro/internal/services"
)

// ProjetoHandler handles HTTP requests for projects.
type ProjetoHandler struct {
	service  *services.ProjetoService
	validate *validator.Validate
}

// NewProjetoHandler creates a new ProjetoHandler.
func NewProjetoHandler(service *services.ProjetoService) *ProjetoHandler {
	return &ProjetoHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the project routes. The caller decides the gating
// by handing in an already-protected router group.
func (h *ProjetoHandler) RegisterRoutes(router fiber.Router) {
	projetoRoutes := router.Group("/projetos")
	projetoRoutes.Get("/", h.HandleGetProjetos)
	projetoRoutes.Post("/", h.HandleCreateProjeto)
	projetoRoutes.Put("/:id", h.HandleUpdateProjeto)
	projetoRoutes.Delete("/:id", h.HandleDeleteProjeto)
}

// projetoCreateRequest carries the fields accepted on creation. Status is
// not among them: new projects always start active.
type projetoCreateRequest struct {
	Nome          string   `json:"nome" validate:"required"`
	Descricao     *string  `json:"descricao"`
	ClienteID     *uint    `json:"cliente_id"`
	TipoProjeto   string   `json:"tipo_projeto" validate:"required"`
	DataInicio    *string  `json:"data_inicio"`
	DataPrevista  *string  `json:"data_prevista"`
	ValorEstimado *float64 `json:"valor_estimado"`
	Observacoes   *string  `json:"observacoes"`
}

// projetoUpdateRequest carries the full replacement record for an update.
// Every required field must be present again; optional fields absent from
// the payload are written as NULL.
type projetoUpdateRequest struct {
	Nome          string   `json:"nome" validate:"required"`
	Descricao     *string  `json:"descricao"`
	TipoProjeto   string   `json:"tipo_projeto" validate:"required"`
	Status        string   `json:"status" validate:"required"`
	DataInicio    *string  `json:"data_inicio"`
	DataPrevista  *string  `json:"data_prevista"`
	ValorEstimado *float64 `json:"valor_estimado"`
	Observacoes   *string  `json:"observacoes"`
}

// HandleGetProjetos lists all projects as a bare JSON array, newest first.
func (h *ProjetoHandler) HandleGetProjetos(c *fiber.Ctx) error {
	projetos, err := h.service.GetAllProjetos()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(projetos)
}

// HandleCreateProjeto creates a new project.
func (h *ProjetoHandler) HandleCreateProjeto(c *fiber.Ctx) error {
	var req projetoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing project create body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	projeto := &models.Projeto{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		ClienteID:     req.ClienteID,
		TipoProjeto:   req.TipoProjeto,
		DataInicio:    req.DataInicio,
		DataPrevista:  req.DataPrevista,
		ValorEstimado: req.ValorEstimado,
		Observacoes:   req.Observacoes,
	}
	if err := h.service.CreateProjeto(projeto); err != nil {
		log.Printf("Error creating project: %v", err)
		return writeFailure(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      projeto.ID,
	})
}

// HandleUpdateProjeto replaces a project record in full.
func (h *ProjetoHandler) HandleUpdateProjeto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req projetoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing project update body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	projeto := &models.Projeto{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		TipoProjeto:   req.TipoProjeto,
		Status:        req.Status,
		DataInicio:    req.DataInicio,
		DataPrevista:  req.DataPrevista,
		ValorEstimado: req.ValorEstimado,
		Observacoes:   req.Observacoes,
	}
	if err := h.service.UpdateProjeto(id, projeto); err != nil {
		log.Printf("Error updating project %d: %v", id, err)
		return writeFailure(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleDeleteProjeto deletes a project by id.
func (h *ProjetoHandler) HandleDeleteProjeto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.service.DeleteProjeto(id); err != nil {
		log.Printf("Error deleting project %d: %v", id, err)
		return writeFailure(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
