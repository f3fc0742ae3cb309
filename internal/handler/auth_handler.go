package handler

import (
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	result, err := h.auth.Login(req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req service.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	result, err := h.auth.Refresh(req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.Error(c, apierr.Unauthorized("not authenticated"))
	}
	profile, err := h.auth.Me(userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, profile)
}
