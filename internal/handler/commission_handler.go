package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CommissionHandler struct {
	commissions service.CommissionService
}

func NewCommissionHandler(commissions service.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissions: commissions}
}

func (h *CommissionHandler) List(c *fiber.Ctx) error {
	items, total, err := h.commissions.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *CommissionHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid commission id"))
	}
	commission, err := h.commissions.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, commission)
}

// Pay marks a pending commission as paid out.
func (h *CommissionHandler) Pay(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid commission id"))
	}
	commission, err := h.commissions.Pay(id, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, commission)
}

func (h *CommissionHandler) CreateConfig(c *fiber.Ctx) error {
	var req model.CommissionConfig
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.commissions.CreateConfig(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *CommissionHandler) ListConfigs(c *fiber.Ctx) error {
	items, total, err := h.commissions.ListConfigs(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *CommissionHandler) UpdateConfig(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid commission config id"))
	}
	var req model.CommissionConfig
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	config, err := h.commissions.UpdateConfig(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, config)
}

func (h *CommissionHandler) DeleteConfig(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid commission config id"))
	}
	if err := h.commissions.DeleteConfig(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "commission config deleted")
}
