package handler

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/service"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products service.ProductService
	importer service.ProductImportService
}

func NewProductHandler(products service.ProductService, importer service.ProductImportService) *ProductHandler {
	return &ProductHandler{products: products, importer: importer}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	if err := h.products.Create(&req, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, req)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, total, err := h.products.List(listParams(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total)
}

func (h *ProductHandler) All(c *fiber.Ctx) error {
	items, err := h.products.FindAll()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid product id"))
	}
	product, err := h.products.Get(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid product id"))
	}
	var req model.Product
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	product, err := h.products.Update(id, &req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid product id"))
	}
	if err := h.products.Delete(id, actorFrom(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "product deleted")
}

// BinCard returns the full stock ledger for one product.
func (h *ProductHandler) BinCard(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid product id"))
	}
	entries, err := h.products.BinCard(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, entries)
}

func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.Error(c, apierr.Validation("id", "invalid product id"))
	}
	var req service.StockAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apierr.Validation("body", "invalid request body"))
	}
	product, err := h.products.AdjustStock(id, req, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

// Import accepts a multipart xlsx upload under the "file" field.
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, apierr.Validation("file", "file upload is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, apierr.Validation("file", "file could not be read"))
	}
	defer file.Close()

	result, err := h.importer.Import(file, actorFrom(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

// ImportTemplate streams the empty workbook users fill in.
func (h *ProductHandler) ImportTemplate(c *fiber.Ctx) error {
	data, err := h.importer.Template()
	if err != nil {
		return response.Error(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="product-import-template.xlsx"`)
	return c.Send(data)
}
