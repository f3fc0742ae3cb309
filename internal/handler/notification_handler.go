package handler

import (
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// Unread is polled by the client bell icon.
func (h *NotificationHandler) Unread(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.Error(c, apierr.Unauthorized("not authenticated"))
	}
	items, err := h.notifications.Unread(userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.Error(c, apierr.Unauthorized("not authenticated"))
	}
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid notification id"))
	}
	if err := h.notifications.MarkRead(id, userID); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.Error(c, apierr.Unauthorized("not authenticated"))
	}
	if err := h.notifications.MarkAllRead(userID); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "all notifications marked as read")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid notification id"))
	}
	if err := h.notifications.Delete(id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "notification deleted")
}

func (h *NotificationHandler) ClearRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.Error(c, apierr.Unauthorized("not authenticated"))
	}
	if err := h.notifications.ClearRead(userID); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "read notifications cleared")
}
