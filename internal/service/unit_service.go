package service

import (
	"context"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/cache"
	"go-pharmacy-api/pkg/pagination"
	"go-pharmacy-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const CacheTagUnits = "units"

type UnitService interface {
	CreateCategory(category *model.UnitCategory, actor Actor) error
	UpdateCategory(id uuid.UUID, req *model.UnitCategory, actor Actor) (*model.UnitCategory, error)
	DeleteCategory(id uuid.UUID, actor Actor) error
	ListCategories(params pagination.Params) ([]model.UnitCategory, int64, error)
	FindAllCategories() ([]model.UnitCategory, error)
	GetCategory(id uuid.UUID) (*model.UnitCategory, error)

	CreateUnit(unit *model.UnitOfMeasure, actor Actor) error
	UpdateUnit(id uuid.UUID, req *model.UnitOfMeasure, actor Actor) (*model.UnitOfMeasure, error)
	DeleteUnit(id uuid.UUID, actor Actor) error
	ListUnits(params pagination.Params) ([]model.UnitOfMeasure, int64, error)
	FindAllUnits() ([]model.UnitOfMeasure, error)
	GetUnit(id uuid.UUID) (*model.UnitOfMeasure, error)
}

type unitService struct {
	repo  repository.UnitRepository
	store *cache.Store
}

func NewUnitService(repo repository.UnitRepository, store *cache.Store) UnitService {
	return &unitService{repo: repo, store: store}
}

func (s *unitService) CreateCategory(category *model.UnitCategory, actor Actor) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return validationError(errs)
	}
	category.CreatedBy = actor.ID
	category.UpdatedBy = actor.ID
	if err := s.repo.CreateCategory(category); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagUnits)
	return nil
}

func (s *unitService) UpdateCategory(id uuid.UUID, req *model.UnitCategory, actor Actor) (*model.UnitCategory, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return nil, apierr.NotFound("unit category")
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedBy = actor.ID
	if err := s.repo.UpdateCategory(existing); err != nil {
		return nil, err
	}
	s.store.Invalidate(context.Background(), CacheTagUnits)
	return existing, nil
}

func (s *unitService) DeleteCategory(id uuid.UUID, actor Actor) error {
	category, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return apierr.NotFound("unit category")
	}
	if len(category.Units) > 0 {
		return apierr.Conflict("unit category still has units")
	}
	if err := s.repo.DeleteCategory(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagUnits)
	return nil
}

func (s *unitService) ListCategories(params pagination.Params) ([]model.UnitCategory, int64, error) {
	return s.repo.ListCategories(params)
}

func (s *unitService) FindAllCategories() ([]model.UnitCategory, error) {
	return s.repo.FindAllCategories()
}

func (s *unitService) GetCategory(id uuid.UUID) (*model.UnitCategory, error) {
	category, err := s.repo.FindCategoryByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("unit category")
		}
		return nil, err
	}
	return category, nil
}

// normalizeUnit enforces the category invariants: a base unit converts
// at exactly 1, a non-positive rate falls back to 1, and a category
// holds at most one base unit.
func (s *unitService) normalizeUnit(unit *model.UnitOfMeasure, selfID uuid.UUID) error {
	if _, err := s.repo.FindCategoryByID(unit.UnitCategoryID); err != nil {
		return apierr.Validation("unitCategoryId", "unit category does not exist")
	}
	if unit.BaseUnit {
		unit.ConversionRate = decimal.NewFromInt(1)
		if base, err := s.repo.FindBaseUnit(unit.UnitCategoryID); err == nil && base.ID != selfID {
			return apierr.Conflict("unit category already has a base unit")
		}
	} else if unit.ConversionRate.Sign() <= 0 {
		unit.ConversionRate = decimal.NewFromInt(1)
	}
	return nil
}

func (s *unitService) CreateUnit(unit *model.UnitOfMeasure, actor Actor) error {
	if errs := validator.ValidateStruct(unit); len(errs) > 0 {
		return validationError(errs)
	}
	if err := s.normalizeUnit(unit, uuid.Nil); err != nil {
		return err
	}
	unit.CreatedBy = actor.ID
	unit.UpdatedBy = actor.ID
	if err := s.repo.CreateUnit(unit); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagUnits)
	return nil
}

func (s *unitService) UpdateUnit(id uuid.UUID, req *model.UnitOfMeasure, actor Actor) (*model.UnitOfMeasure, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindUnitByID(id)
	if err != nil {
		return nil, apierr.NotFound("unit")
	}
	if err := s.normalizeUnit(req, existing.ID); err != nil {
		return nil, err
	}
	existing.Name = req.Name
	existing.Abbreviation = req.Abbreviation
	existing.ConversionRate = req.ConversionRate
	existing.BaseUnit = req.BaseUnit
	existing.UnitCategoryID = req.UnitCategoryID
	existing.UpdatedBy = actor.ID
	if err := s.repo.UpdateUnit(existing); err != nil {
		return nil, err
	}
	s.store.Invalidate(context.Background(), CacheTagUnits)
	return existing, nil
}

func (s *unitService) DeleteUnit(id uuid.UUID, actor Actor) error {
	if _, err := s.repo.FindUnitByID(id); err != nil {
		return apierr.NotFound("unit")
	}
	if err := s.repo.DeleteUnit(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagUnits)
	return nil
}

func (s *unitService) ListUnits(params pagination.Params) ([]model.UnitOfMeasure, int64, error) {
	return s.repo.ListUnits(params)
}

func (s *unitService) FindAllUnits() ([]model.UnitOfMeasure, error) {
	return s.repo.FindAllUnits()
}

func (s *unitService) GetUnit(id uuid.UUID) (*model.UnitOfMeasure, error) {
	unit, err := s.repo.FindUnitByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("unit")
		}
		return nil, err
	}
	return unit, nil
}
