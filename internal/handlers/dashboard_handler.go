package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"allupro/internal/services"
)

// DashboardHandler handles the read-only dashboard summary.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard route.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetDashboard)
}

// HandleGetDashboard returns the fixed-shape summary: counters plus the five
// most recent projects. Not paginated, not parameterized.
func (h *DashboardHandler) HandleGetDashboard(c *fiber.Ctx) error {
	resumo, err := h.service.Resumo()
	if err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(resumo)
}
