package handler

import (
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	user, err := h.users.Create(req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	items, total, err := h.users.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *UserHandler) All(c *fiber.Ctx) error {
	items, err := h.users.FindAll()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid user id"))
	}
	user, err := h.users.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid user id"))
	}
	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	user, err := h.users.Update(id, req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid user id"))
	}
	if err := h.users.Delete(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "user deleted")
}

// ChangePassword changes the authenticated user's own password.
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.Error(c, apierr.Unauthorized("not authenticated"))
	}
	var req service.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.users.ChangePassword(userID, req); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "password changed")
}

func (h *UserHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.users.Roles()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, roles)
}

func (h *UserHandler) Privileges(c *fiber.Ctx) error {
	privileges, err := h.users.Privileges()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, privileges)
}
