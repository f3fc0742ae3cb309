package handler

import (
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, stats)
}

func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.dashboard.LowStock()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, products)
}

// StockMovement serves the daily in/out chart; ?days= bounds the range.
func (h *DashboardHandler) StockMovement(c *fiber.Ctx) error {
	data, err := h.dashboard.StockMovement(c.QueryInt("days", 30))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, data)
}
