package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"allupro/internal/services"
)

// ProjetoMaterialHandler handles HTTP requests for a project's material line
// items.
type ProjetoMaterialHandler struct {
	service  *services.ProjetoMaterialService
	validate *validator.Validate
}

// NewProjetoMaterialHandler creates a new ProjetoMaterialHandler.
func NewProjetoMaterialHandler(service *services.ProjetoMaterialService) *ProjetoMaterialHandler {
	return &ProjetoMaterialHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the line-item routes under the project resource.
func (h *ProjetoMaterialHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/projetos/:id/materiais", h.HandleGetItens)
	router.Post("/projetos/:id/materiais", h.HandleAddItem)
	router.Delete("/projetos/:id/materiais/:itemId", h.HandleRemoveItem)
}

// itemRequest represents the request body for adding a line item. The unit
// price is optional; when absent, the material's current catalog price is
// snapshotted.
type itemRequest struct {
	MaterialID    uint     `json:"material_id" validate:"required"`
	Quantidade    int      `json:"quantidade" validate:"required,gt=0"`
	PrecoUnitario *float64 `json:"preco_unitario"`
}

// HandleGetItens lists a project's line items as a bare JSON array.
func (h *ProjetoMaterialHandler) HandleGetItens(c *fiber.Ctx) error {
	projetoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	itens, err := h.service.GetItensDoProjeto(projetoID)
	if err != nil {
		log.Printf("Error listing line items for project %d: %v", projetoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(itens)
}

// HandleAddItem associates a material to the project.
func (h *ProjetoMaterialHandler) HandleAddItem(c *fiber.Ctx) error {
	projetoID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing line item body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	item, err := h.service.AddItem(projetoID, req.MaterialID, req.Quantidade, req.PrecoUnitario)
	if err != nil {
		log.Printf("Error adding line item to project %d: %v", projetoID, err)
		return writeFailure(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      item.ID,
	})
}

// HandleRemoveItem deletes a line item.
func (h *ProjetoMaterialHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if _, err := parseIDParam(c, "id"); err != nil {
		return badRequest(c, err.Error())
	}
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.service.RemoveItem(itemID); err != nil {
		log.Printf("Error removing line item %d: %v", itemID, err)
		return writeFailure(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
