package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/asplot/plotshop-api/internal/application/analytics"
	"github.com/asplot/plotshop-api/internal/application/dto"
)

// DashboardHandler maneja el resumen operativo del taller.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del taller: conteos, valor de inventario,
// ingresos, stock bajo y listados recientes.
// GET /api/v1/dashboard/summary
//
// No requiere parámetros; las métricas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
