package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.customers.Create(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	items, total, err := h.customers.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *CustomerHandler) All(c *fiber.Ctx) error {
	items, err := h.customers.FindAll()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid customer id"))
	}
	customer, err := h.customers.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid customer id"))
	}
	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	customer, err := h.customers.Update(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid customer id"))
	}
	if err := h.customers.Delete(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "customer deleted")
}
