package service

import (
	"bytes"
	"testing"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCategoryRepo struct{ categories []model.Category }

func (s *stubCategoryRepo) Create(category *model.Category) error { return nil }
func (s *stubCategoryRepo) List(params pagination.Params) ([]model.Category, int64, error) {
	return nil, 0, nil
}
func (s *stubCategoryRepo) FindAll() ([]model.Category, error) { return s.categories, nil }
func (s *stubCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubCategoryRepo) Update(category *model.Category) error       { return nil }
func (s *stubCategoryRepo) Delete(id uuid.UUID, deletedBy string) error { return nil }

type stubManufacturerRepo struct{ manufacturers []model.Manufacturer }

func (s *stubManufacturerRepo) Create(manufacturer *model.Manufacturer) error { return nil }
func (s *stubManufacturerRepo) List(params pagination.Params) ([]model.Manufacturer, int64, error) {
	return nil, 0, nil
}
func (s *stubManufacturerRepo) FindAll() ([]model.Manufacturer, error) { return s.manufacturers, nil }
func (s *stubManufacturerRepo) FindByID(id uuid.UUID) (*model.Manufacturer, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubManufacturerRepo) Update(manufacturer *model.Manufacturer) error { return nil }
func (s *stubManufacturerRepo) Delete(id uuid.UUID, deletedBy string) error   { return nil }

// stubProductService records creations so the import test can assert
// what reached the product layer.
type stubProductService struct{ created []*model.Product }

func (s *stubProductService) Create(req *model.Product, actor Actor) error {
	s.created = append(s.created, req)
	return nil
}
func (s *stubProductService) Update(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error) {
	return nil, nil
}
func (s *stubProductService) Delete(id uuid.UUID, actor Actor) error { return nil }
func (s *stubProductService) List(params pagination.Params) ([]model.Product, int64, error) {
	return nil, 0, nil
}
func (s *stubProductService) FindAll() ([]model.Product, error)        { return nil, nil }
func (s *stubProductService) Get(id uuid.UUID) (*model.Product, error) { return nil, nil }
func (s *stubProductService) BinCard(id uuid.UUID) ([]model.BinCardEntry, error) {
	return nil, nil
}
func (s *stubProductService) AdjustStock(id uuid.UUID, req StockAdjustmentRequest, actor Actor) (*model.Product, error) {
	return nil, nil
}

func importFixture() (*stubProductService, ProductImportService) {
	category := model.Category{Name: "Analgesics"}
	category.ID = uuid.New()
	manufacturer := model.Manufacturer{Name: "Addis Pharmaceutical Factory"}
	manufacturer.ID = uuid.New()
	unitCategory := &model.UnitCategory{Name: "Tablet forms"}
	unitCategory.ID = uuid.New()

	unitRepo := newStubUnitRepo()
	unitRepo.allCategories = []model.UnitCategory{*unitCategory}

	products := &stubProductService{}
	importer := NewProductImportService(
		products,
		&stubCategoryRepo{categories: []model.Category{category}},
		&stubManufacturerRepo{manufacturers: []model.Manufacturer{manufacturer}},
		unitRepo,
	)
	return products, importer
}

func TestTemplateRoundTripsThroughImport(t *testing.T) {
	products, importer := importFixture()

	// The generated template carries one example row referencing the
	// fixture master data, so importing it creates exactly one product.
	data, err := importer.Template()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	result, err := importer.Import(bytes.NewReader(data), Actor{ID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Failed)
	require.Len(t, products.created, 1)

	created := products.created[0]
	assert.Equal(t, "PARA-500", created.ProductCode)
	assert.Equal(t, "Paracetamol 500mg", created.Name)
	assert.Equal(t, 1000.0, created.Quantity)
	require.NotNil(t, created.ExpiryDate)
	assert.Equal(t, "2027-06-30", created.ExpiryDate.Format("2006-01-02"))
}

func TestImportReportsUnknownMasterData(t *testing.T) {
	products, importer := importFixture()

	data, err := importer.Template()
	require.NoError(t, err)

	// Corrupt the example row's category by pointing the fixture at an
	// empty catalog instead.
	empty := NewProductImportService(
		products,
		&stubCategoryRepo{},
		&stubManufacturerRepo{},
		newStubUnitRepo(),
	)

	result, err := empty.Import(bytes.NewReader(data), Actor{ID: "u1"})
	require.NoError(t, err)

	assert.Zero(t, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "unknown category")
}

func TestImportRejectsGarbageFile(t *testing.T) {
	_, importer := importFixture()

	_, err := importer.Import(bytes.NewReader([]byte("not an xlsx")), Actor{ID: "u1"})
	require.Error(t, err)
}
