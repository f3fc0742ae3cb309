// Package response is the single place the API shapes its JSON. Every
// handler goes through it, so clients always receive one envelope:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.
package response

import (
	"github.com/gofiber/fiber/v2"

	"go-pharmacy-api/pkg/apierr"
)

// PageData is the payload shape of every paginated listing.
type PageData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

// Page wraps a listing page as {items, total}.
func Page(c *fiber.Ctx, items interface{}, total int64) error {
	return OK(c, PageData{Items: items, Total: total})
}

// Message is used where there is nothing to return but an outcome.
func Message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"message": msg}})
}

// Error normalizes err and writes it with the matching status code.
func Error(c *fiber.Ctx, err error) error {
	e := apierr.From(err)
	return c.Status(e.Status()).JSON(fiber.Map{"success": false, "error": e})
}
