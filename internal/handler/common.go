package handler

import (
	"go-pharmacy-api/internal/middleware"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actorFrom reads the authenticated identity the middleware stored.
func actorFrom(c *fiber.Ctx) service.Actor {
	actor := service.Actor{}
	if v, ok := c.Locals(middleware.LocalUserID).(string); ok {
		actor.ID = v
	}
	if v, ok := c.Locals(middleware.LocalUserName).(string); ok {
		actor.Name = v
	}
	if v, ok := c.Locals(middleware.LocalUserEmail).(string); ok {
		actor.Email = v
	}
	return actor
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(middleware.LocalUserID).(string)
	return uuid.Parse(raw)
}

// parseUUID reads a path parameter as a UUID.
func parseUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// listParams reads the standard listing query string:
// ?page=&limit=&search=&sortBy=&sortOrder=
func listParams(c *fiber.Ctx) pagination.Params {
	params := pagination.Params{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", pagination.DefaultLimit),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	params.Normalize()
	return params
}
