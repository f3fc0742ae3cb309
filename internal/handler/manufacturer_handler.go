package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ManufacturerHandler struct {
	manufacturers service.ManufacturerService
}

func NewManufacturerHandler(manufacturers service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{manufacturers: manufacturers}
}

func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	var req model.Manufacturer
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.manufacturers.Create(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	items, total, err := h.manufacturers.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *ManufacturerHandler) All(c *fiber.Ctx) error {
	items, err := h.manufacturers.FindAll()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *ManufacturerHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid manufacturer id"))
	}
	manufacturer, err := h.manufacturers.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, manufacturer)
}

func (h *ManufacturerHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid manufacturer id"))
	}
	var req model.Manufacturer
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	manufacturer, err := h.manufacturers.Update(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, manufacturer)
}

func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid manufacturer id"))
	}
	if err := h.manufacturers.Delete(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "manufacturer deleted")
}
