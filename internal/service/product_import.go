package service

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"

	"github.com/xuri/excelize/v2"
)

const importSheet = "Products"

var importHeader = []string{
	"Product Code", "Name", "Generic Name", "Category", "Manufacturer",
	"Unit Category", "Quantity", "Purchase Price", "Selling Price",
	"Min Level", "Batch Number", "Expiry Date (YYYY-MM-DD)",
}

// ImportRowError ties a failure to the spreadsheet row it came from.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import: rows either import or are
// reported, never silently dropped.
type ImportResult struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors"`
}

type ProductImportService interface {
	Import(file io.Reader, actor Actor) (*ImportResult, error)
	Template() ([]byte, error)
}

type productImportService struct {
	products         ProductService
	categoryRepo     repository.CategoryRepository
	manufacturerRepo repository.ManufacturerRepository
	unitRepo         repository.UnitRepository
}

func NewProductImportService(
	products ProductService,
	categoryRepo repository.CategoryRepository,
	manufacturerRepo repository.ManufacturerRepository,
	unitRepo repository.UnitRepository,
) ProductImportService {
	return &productImportService{
		products:         products,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
		unitRepo:         unitRepo,
	}
}

// Template produces the empty spreadsheet users fill in, with one
// example row so the expected formats are visible.
func (s *productImportService) Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(importSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, title := range importHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(importSheet, cell, title); err != nil {
			return nil, err
		}
	}
	example := []interface{}{
		"PARA-500", "Paracetamol 500mg", "Paracetamol", "Analgesics",
		"Addis Pharmaceutical Factory", "Tablet forms", 1000, 0.45, 0.75,
		200, "B20260101", "2027-06-30",
	}
	for i, value := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(importSheet, cell, value); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func parseCellFloat(row []string, i int) (float64, error) {
	raw := cellAt(row, i)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}

// Import reads an uploaded workbook and creates one product per row.
// Lookups are by name against existing master data; a row referencing
// unknown master data fails on its own without aborting the rest.
func (s *productImportService) Import(file io.Reader, actor Actor) (*ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apierr.Validation("file", "file is not a valid xlsx workbook")
	}
	defer f.Close()

	sheet := importSheet
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apierr.Validation("file", "workbook has no readable rows")
	}
	if len(rows) < 2 {
		return nil, apierr.Validation("file", "workbook has no data rows")
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	manufacturers, err := s.manufacturerRepo.FindAll()
	if err != nil {
		return nil, err
	}
	unitCategories, err := s.unitRepo.FindAllCategories()
	if err != nil {
		return nil, err
	}

	categoryByName := make(map[string]*model.Category, len(categories))
	for i := range categories {
		categoryByName[strings.ToLower(categories[i].Name)] = &categories[i]
	}
	manufacturerByName := make(map[string]*model.Manufacturer, len(manufacturers))
	for i := range manufacturers {
		manufacturerByName[strings.ToLower(manufacturers[i].Name)] = &manufacturers[i]
	}
	unitCategoryByName := make(map[string]*model.UnitCategory, len(unitCategories))
	for i := range unitCategories {
		unitCategoryByName[strings.ToLower(unitCategories[i].Name)] = &unitCategories[i]
	}

	result := &ImportResult{}
	for rowIndex, row := range rows[1:] {
		rowNumber := rowIndex + 2

		fail := func(message string) {
			result.Failed++
			result.Errors = append(result.Errors, ImportRowError{Row: rowNumber, Message: message})
		}

		product := model.Product{
			ProductCode: cellAt(row, 0),
			Name:        cellAt(row, 1),
			GenericName: cellAt(row, 2),
			BatchNumber: cellAt(row, 10),
		}
		if product.ProductCode == "" && product.Name == "" {
			continue // blank filler row
		}

		category, ok := categoryByName[strings.ToLower(cellAt(row, 3))]
		if !ok {
			fail(fmt.Sprintf("unknown category '%s'", cellAt(row, 3)))
			continue
		}
		manufacturer, ok := manufacturerByName[strings.ToLower(cellAt(row, 4))]
		if !ok {
			fail(fmt.Sprintf("unknown manufacturer '%s'", cellAt(row, 4)))
			continue
		}
		unitCategory, ok := unitCategoryByName[strings.ToLower(cellAt(row, 5))]
		if !ok {
			fail(fmt.Sprintf("unknown unit category '%s'", cellAt(row, 5)))
			continue
		}
		product.CategoryID = category.ID
		product.ManufacturerID = manufacturer.ID
		product.UnitCategoryID = unitCategory.ID

		if product.Quantity, err = parseCellFloat(row, 6); err != nil {
			fail("quantity is not a number")
			continue
		}
		if product.PurchasePrice, err = parseCellFloat(row, 7); err != nil {
			fail("purchase price is not a number")
			continue
		}
		if product.SellingPrice, err = parseCellFloat(row, 8); err != nil {
			fail("selling price is not a number")
			continue
		}
		if product.MinLevel, err = parseCellFloat(row, 9); err != nil {
			fail("min level is not a number")
			continue
		}
		if raw := cellAt(row, 11); raw != "" {
			expiry, err := time.Parse("2006-01-02", raw)
			if err != nil {
				fail("expiry date must be YYYY-MM-DD")
				continue
			}
			product.ExpiryDate = &expiry
		}

		if err := s.products.Create(&product, actor); err != nil {
			fail(apierr.From(err).Message)
			continue
		}
		result.Imported++
	}
	return result, nil
}
