package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"allupro/internal/models"
	"allupro/internal/services"
)

// MaterialHandler handles HTTP requests for the material catalog.
type MaterialHandler struct {
	service  *services.MaterialService
	validate *validator.Validate
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(service *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the material routes.
func (h *MaterialHandler) RegisterRoutes(router fiber.Router) {
	materialRoutes := router.Group("/materiais")
	materialRoutes.Get("/", h.HandleGetMateriais)
	materialRoutes.Post("/", h.HandleCreateMaterial)
	materialRoutes.Put("/:id", h.HandleUpdateMaterial)
	materialRoutes.Delete("/:id", h.HandleDeleteMaterial)
}

// materialRequest carries the full material record; used for both create and
// update, which share full-replace semantics.
type materialRequest struct {
	Nome           string   `json:"nome" validate:"required"`
	TipoMaterial   string   `json:"tipo_material" validate:"required"`
	Especificacoes *string  `json:"especificacoes"`
	PrecoUnitario  *float64 `json:"preco_unitario"`
	EstoqueAtual   *int     `json:"estoque_atual"`
	UnidadeMedida  *string  `json:"unidade_medida"`
	Fornecedor     *string  `json:"fornecedor"`
}

func (r *materialRequest) toModel() *models.Material {
	material := &models.Material{
		Nome:           r.Nome,
		TipoMaterial:   r.TipoMaterial,
		Especificacoes: r.Especificacoes,
		PrecoUnitario:  r.PrecoUnitario,
		Fornecedor:     r.Fornecedor,
	}
	if r.EstoqueAtual != nil {
		material.EstoqueAtual = *r.EstoqueAtual
	}
	if r.UnidadeMedida != nil {
		material.UnidadeMedida = *r.UnidadeMedida
	}
	return material
}

// HandleGetMateriais lists all materials as a bare JSON array, ordered by
// name.
func (h *MaterialHandler) HandleGetMateriais(c *fiber.Ctx) error {
	materiais, err := h.service.GetAllMateriais()
	if err != nil {
		log.Printf("Error listing materials: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(materiais)
}

// HandleCreateMaterial creates a new material.
func (h *MaterialHandler) HandleCreateMaterial(c *fiber.Ctx) error {
	var req materialRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing material create body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	material := req.toModel()
	if err := h.service.CreateMaterial(material); err != nil {
		log.Printf("Error creating material: %v", err)
		return writeFailure(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      material.ID,
	})
}

// HandleUpdateMaterial replaces a material record in full.
func (h *MaterialHandler) HandleUpdateMaterial(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req materialRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing material update body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	if err := h.service.UpdateMaterial(id, req.toModel()); err != nil {
		log.Printf("Error updating material %d: %v", id, err)
		return writeFailure(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleDeleteMaterial deletes a material by id.
func (h *MaterialHandler) HandleDeleteMaterial(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.service.DeleteMaterial(id); err != nil {
		log.Printf("Error deleting material %d: %v", id, err)
		return writeFailure(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
