package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UnitHandler serves both unit categories and units of measure; the two
// are managed together on the same screen.
type UnitHandler struct {
	units service.UnitService
}

func NewUnitHandler(units service.UnitService) *UnitHandler {
	return &UnitHandler{units: units}
}

func (h *UnitHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.UnitCategory
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.units.CreateCategory(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *UnitHandler) ListCategories(c *fiber.Ctx) error {
	items, total, err := h.units.ListCategories(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *UnitHandler) AllCategories(c *fiber.Ctx) error {
	items, err := h.units.FindAllCategories()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *UnitHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid unit category id"))
	}
	category, err := h.units.GetCategory(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

func (h *UnitHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid unit category id"))
	}
	var req model.UnitCategory
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	category, err := h.units.UpdateCategory(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

func (h *UnitHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid unit category id"))
	}
	if err := h.units.DeleteCategory(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "unit category deleted")
}

func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var req model.UnitOfMeasure
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.units.CreateUnit(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *UnitHandler) ListUnits(c *fiber.Ctx) error {
	items, total, err := h.units.ListUnits(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *UnitHandler) AllUnits(c *fiber.Ctx) error {
	items, err := h.units.FindAllUnits()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *UnitHandler) GetUnit(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid unit id"))
	}
	unit, err := h.units.GetUnit(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, unit)
}

func (h *UnitHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid unit id"))
	}
	var req model.UnitOfMeasure
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	unit, err := h.units.UpdateUnit(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, unit)
}

func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid unit id"))
	}
	if err := h.units.DeleteUnit(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "unit deleted")
}
