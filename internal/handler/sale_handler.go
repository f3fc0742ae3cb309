package handler

import (
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	sales service.SaleService
}

func NewSaleHandler(sales service.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	sale, err := h.sales.Create(&req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, sale)
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	items, total, err := h.sales.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid sale id"))
	}
	sale, err := h.sales.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, sale)
}
