package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/stock"
)

// DashboardHandler métricas agregadas para el dashboard del SPA (protegido).
type DashboardHandler struct {
	query *stock.QueryUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(query *stock.QueryUseCase) *DashboardHandler {
	return &DashboardHandler{query: query}
}

// Stats godoc
// @Summary      Métricas del dashboard
// @Description  Ítems bajo punto de reorden y valor total del inventario del tenant.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.query.DashboardStats(c.Context(), GetTenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
