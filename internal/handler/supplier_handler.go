package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	suppliers service.SupplierService
}

func NewSupplierHandler(suppliers service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.suppliers.Create(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	items, total, err := h.suppliers.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *SupplierHandler) All(c *fiber.Ctx) error {
	items, err := h.suppliers.FindAll()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid supplier id"))
	}
	supplier, err := h.suppliers.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid supplier id"))
	}
	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	supplier, err := h.suppliers.Update(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, supplier)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid supplier id"))
	}
	if err := h.suppliers.Delete(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "supplier deleted")
}
