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
)

const CacheTagManufacturers = "manufacturers"

type ManufacturerService interface {
	Create(manufacturer *model.Manufacturer, actor Actor) error
	Update(id uuid.UUID, req *model.Manufacturer, actor Actor) (*model.Manufacturer, error)
	Delete(id uuid.UUID, actor Actor) error
	List(params pagination.Params) ([]model.Manufacturer, int64, error)
	FindAll() ([]model.Manufacturer, error)
	Get(id uuid.UUID) (*model.Manufacturer, error)
}

type manufacturerService struct {
	repo  repository.ManufacturerRepository
	store *cache.Store
}

func NewManufacturerService(repo repository.ManufacturerRepository, store *cache.Store) ManufacturerService {
	return &manufacturerService{repo: repo, store: store}
}

func (s *manufacturerService) Create(manufacturer *model.Manufacturer, actor Actor) error {
	if errs := validator.ValidateStruct(manufacturer); len(errs) > 0 {
		return validationError(errs)
	}
	manufacturer.CreatedBy = actor.ID
	manufacturer.UpdatedBy = actor.ID
	if err := s.repo.Create(manufacturer); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagManufacturers)
	return nil
}

func (s *manufacturerService) Update(id uuid.UUID, req *model.Manufacturer, actor Actor) (*model.Manufacturer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apierr.NotFound("manufacturer")
	}
	existing.Name = req.Name
	existing.Country = req.Country
	existing.ContactEmail = req.ContactEmail
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.UpdatedBy = actor.ID
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	s.store.Invalidate(context.Background(), CacheTagManufacturers)
	return existing, nil
}

func (s *manufacturerService) Delete(id uuid.UUID, actor Actor) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apierr.NotFound("manufacturer")
	}
	if err := s.repo.Delete(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagManufacturers)
	return nil
}

func (s *manufacturerService) List(params pagination.Params) ([]model.Manufacturer, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagManufacturers, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page struct {
		Items []model.Manufacturer `json:"items"`
		Total int64                `json:"total"`
	}
	if s.store.Get(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	items, total, err := s.repo.List(params)
	if err != nil {
		return nil, 0, err
	}
	page.Items, page.Total = items, total
	s.store.Set(ctx, key, page, CacheTagManufacturers)
	return items, total, nil
}

func (s *manufacturerService) FindAll() ([]model.Manufacturer, error) {
	return s.repo.FindAll()
}

func (s *manufacturerService) Get(id uuid.UUID) (*model.Manufacturer, error) {
	manufacturer, err := s.repo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("manufacturer")
		}
		return nil, err
	}
	return manufacturer, nil
}
