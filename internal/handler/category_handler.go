package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categories service.CategoryService
}

func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.categories.Create(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	items, total, err := h.categories.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *CategoryHandler) All(c *fiber.Ctx) error {
	items, err := h.categories.FindAll()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid category id"))
	}
	category, err := h.categories.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid category id"))
	}
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	category, err := h.categories.Update(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid category id"))
	}
	if err := h.categories.Delete(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "category deleted")
}
