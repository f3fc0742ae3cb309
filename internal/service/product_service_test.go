package service

import (
	"testing"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubProductRepo counts calls so tests can assert the service stopped
// before touching storage.
type stubProductRepo struct {
	byCode      map[string]*model.Product
	createCalls int
	codeLookups int
}

func (s *stubProductRepo) Create(product *model.Product) error {
	s.createCalls++
	return nil
}

func (s *stubProductRepo) List(params pagination.Params) ([]model.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) FindAll() ([]model.Product, error) { return nil, nil }

func (s *stubProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepo) FindByCode(code string) (*model.Product, error) {
	s.codeLookups++
	if p, ok := s.byCode[code]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepo) Update(product *model.Product) error { return nil }

func (s *stubProductRepo) Delete(id uuid.UUID, deletedBy string) error { return nil }

func (s *stubProductRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity float64, updatedBy string) error {
	return nil
}

func (s *stubProductRepo) LowStock() ([]model.Product, error) { return nil, nil }

func validProduct() *model.Product {
	return &model.Product{
		Name:           "Paracetamol 500mg",
		ProductCode:    "PARA-500",
		CategoryID:     uuid.New(),
		ManufacturerID: uuid.New(),
		UnitCategoryID: uuid.New(),
		SellingPrice:   0.75,
	}
}

func TestCreateValidationBlocksRepository(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil, nil, nil, nil, nil)

	product := validProduct()
	product.Name = ""

	err := svc.Create(product, Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
	assert.Equal(t, "Name", apiErr.Field)

	// The failure happened before any storage access.
	assert.Zero(t, repo.codeLookups)
	assert.Zero(t, repo.createCalls)
}

func TestCreateMissingCategoryIsValidationError(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil, nil, nil, nil, nil)

	product := validProduct()
	product.CategoryID = uuid.Nil

	err := svc.Create(product, Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
	assert.Equal(t, "CategoryID", apiErr.Field)
	assert.Zero(t, repo.createCalls)
}

func TestCreateDuplicateCodeIsConflict(t *testing.T) {
	existing := validProduct()
	existing.ID = uuid.New()
	repo := &stubProductRepo{byCode: map[string]*model.Product{"PARA-500": existing}}
	svc := NewProductService(repo, nil, nil, nil, nil, nil)

	err := svc.Create(validProduct(), Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindConflict, apiErr.Kind)
	assert.Zero(t, repo.createCalls)
}

func TestAdjustStockValidation(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil, nil, nil, nil, nil)

	_, err := svc.AdjustStock(uuid.New(), StockAdjustmentRequest{Quantity: 0, Reason: "damage"}, Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
}

func TestExpiryDateSurvivesValidation(t *testing.T) {
	// Regression guard: an expiry in the past is allowed (existing stock
	// may already be expired); only the format is validated elsewhere.
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil, nil, nil, nil, nil)

	product := validProduct()
	expired := time.Now().AddDate(-1, 0, 0)
	product.ExpiryDate = &expired
	product.ProductCode = ""

	err := svc.Create(product, Actor{ID: "u1"})

	// Fails on the blank code, not on the date.
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ProductCode", apiErr.Field)
}
