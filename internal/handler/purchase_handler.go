package handler

import (
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	purchases service.PurchaseService
}

func NewPurchaseHandler(purchases service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req service.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	purchase, err := h.purchases.Create(&req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, purchase)
}

func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	items, total, err := h.purchases.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid purchase id"))
	}
	purchase, err := h.purchases.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, purchase)
}
