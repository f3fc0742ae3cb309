package service

import (
	"testing"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUnitRepo struct {
	categories    map[uuid.UUID]*model.UnitCategory
	allCategories []model.UnitCategory
	baseUnits     map[uuid.UUID]*model.UnitOfMeasure
	created       []*model.UnitOfMeasure
}

func newStubUnitRepo() *stubUnitRepo {
	return &stubUnitRepo{
		categories: map[uuid.UUID]*model.UnitCategory{},
		baseUnits:  map[uuid.UUID]*model.UnitOfMeasure{},
	}
}

func (s *stubUnitRepo) CreateCategory(category *model.UnitCategory) error { return nil }

func (s *stubUnitRepo) ListCategories(params pagination.Params) ([]model.UnitCategory, int64, error) {
	return nil, 0, nil
}

func (s *stubUnitRepo) FindAllCategories() ([]model.UnitCategory, error) {
	return s.allCategories, nil
}

func (s *stubUnitRepo) FindCategoryByID(id uuid.UUID) (*model.UnitCategory, error) {
	if c, ok := s.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUnitRepo) UpdateCategory(category *model.UnitCategory) error { return nil }

func (s *stubUnitRepo) DeleteCategory(id uuid.UUID, deletedBy string) error { return nil }

func (s *stubUnitRepo) CreateUnit(unit *model.UnitOfMeasure) error {
	s.created = append(s.created, unit)
	return nil
}

func (s *stubUnitRepo) ListUnits(params pagination.Params) ([]model.UnitOfMeasure, int64, error) {
	return nil, 0, nil
}

func (s *stubUnitRepo) FindAllUnits() ([]model.UnitOfMeasure, error) { return nil, nil }

func (s *stubUnitRepo) FindUnitByID(id uuid.UUID) (*model.UnitOfMeasure, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUnitRepo) FindBaseUnit(categoryID uuid.UUID) (*model.UnitOfMeasure, error) {
	if u, ok := s.baseUnits[categoryID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUnitRepo) UpdateUnit(unit *model.UnitOfMeasure) error { return nil }

func (s *stubUnitRepo) DeleteUnit(id uuid.UUID, deletedBy string) error { return nil }

func TestCreateBaseUnitForcesRateOne(t *testing.T) {
	repo := newStubUnitRepo()
	categoryID := uuid.New()
	repo.categories[categoryID] = &model.UnitCategory{Name: "Tablet forms"}

	svc := NewUnitService(repo, nil)
	unit := &model.UnitOfMeasure{
		Name:           "Tablet",
		Abbreviation:   "tab",
		BaseUnit:       true,
		ConversionRate: decimal.NewFromInt(50), // ignored for base units
		UnitCategoryID: categoryID,
	}

	require.NoError(t, svc.CreateUnit(unit, Actor{ID: "u1"}))
	assert.True(t, unit.ConversionRate.Equal(decimal.NewFromInt(1)))
}

func TestCreateSecondBaseUnitIsConflict(t *testing.T) {
	repo := newStubUnitRepo()
	categoryID := uuid.New()
	repo.categories[categoryID] = &model.UnitCategory{Name: "Tablet forms"}
	existing := &model.UnitOfMeasure{Name: "Tablet", BaseUnit: true, UnitCategoryID: categoryID}
	existing.ID = uuid.New()
	repo.baseUnits[categoryID] = existing

	svc := NewUnitService(repo, nil)
	err := svc.CreateUnit(&model.UnitOfMeasure{
		Name:           "Capsule",
		Abbreviation:   "cap",
		BaseUnit:       true,
		UnitCategoryID: categoryID,
	}, Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindConflict, apiErr.Kind)
	assert.Empty(t, repo.created)
}

func TestCreateUnitNonPositiveRateFallsBackToOne(t *testing.T) {
	repo := newStubUnitRepo()
	categoryID := uuid.New()
	repo.categories[categoryID] = &model.UnitCategory{Name: "Liquids"}

	svc := NewUnitService(repo, nil)
	unit := &model.UnitOfMeasure{
		Name:           "Bottle",
		Abbreviation:   "btl",
		ConversionRate: decimal.NewFromInt(-2),
		UnitCategoryID: categoryID,
	}

	require.NoError(t, svc.CreateUnit(unit, Actor{ID: "u1"}))
	assert.True(t, unit.ConversionRate.Equal(decimal.NewFromInt(1)))
}

func TestCreateUnitUnknownCategory(t *testing.T) {
	svc := NewUnitService(newStubUnitRepo(), nil)

	err := svc.CreateUnit(&model.UnitOfMeasure{
		Name:           "Box",
		Abbreviation:   "box",
		UnitCategoryID: uuid.New(),
	}, Actor{ID: "u1"})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
}
