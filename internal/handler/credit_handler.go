package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CreditHandler struct {
	credits service.CreditService
}

func NewCreditHandler(credits service.CreditService) *CreditHandler {
	return &CreditHandler{credits: credits}
}

// List supports the ?type=PAYABLE|RECEIVABLE and ?status= filters the
// credits screen exposes as tabs.
func (h *CreditHandler) List(c *fiber.Ctx) error {
	filter := repository.CreditListFilter{
		Type:   model.CreditType(c.Query("type")),
		Status: model.CreditStatus(c.Query("status")),
	}
	items, total, err := h.credits.List(listParams(c), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *CreditHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid credit id"))
	}
	credit, err := h.credits.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, credit)
}

func (h *CreditHandler) RecordPayment(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid credit id"))
	}
	var req service.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	credit, err := h.credits.RecordPayment(id, req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, credit)
}
