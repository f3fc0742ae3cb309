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

const CacheTagSuppliers = "suppliers"

type SupplierService interface {
	Create(supplier *model.Supplier, actor Actor) error
	Update(id uuid.UUID, req *model.Supplier, actor Actor) (*model.Supplier, error)
	Delete(id uuid.UUID, actor Actor) error
	List(params pagination.Params) ([]model.Supplier, int64, error)
	FindAll() ([]model.Supplier, error)
	Get(id uuid.UUID) (*model.Supplier, error)
}

type supplierService struct {
	repo  repository.SupplierRepository
	store *cache.Store
}

func NewSupplierService(repo repository.SupplierRepository, store *cache.Store) SupplierService {
	return &supplierService{repo: repo, store: store}
}

func (s *supplierService) Create(supplier *model.Supplier, actor Actor) error {
	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		return validationError(errs)
	}
	supplier.CreatedBy = actor.ID
	supplier.UpdatedBy = actor.ID
	supplier.IsActive = true
	if err := s.repo.Create(supplier); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagSuppliers)
	return nil
}

func (s *supplierService) Update(id uuid.UUID, req *model.Supplier, actor Actor) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apierr.NotFound("supplier")
	}
	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.TinNumber = req.TinNumber
	existing.IsActive = req.IsActive
	existing.UpdatedBy = actor.ID
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	s.store.Invalidate(context.Background(), CacheTagSuppliers)
	return existing, nil
}

func (s *supplierService) Delete(id uuid.UUID, actor Actor) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apierr.NotFound("supplier")
	}
	if err := s.repo.Delete(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagSuppliers)
	return nil
}

func (s *supplierService) List(params pagination.Params) ([]model.Supplier, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagSuppliers, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page struct {
		Items []model.Supplier `json:"items"`
		Total int64            `json:"total"`
	}
	if s.store.Get(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	items, total, err := s.repo.List(params)
	if err != nil {
		return nil, 0, err
	}
	page.Items, page.Total = items, total
	s.store.Set(ctx, key, page, CacheTagSuppliers)
	return items, total, nil
}

func (s *supplierService) FindAll() ([]model.Supplier, error) {
	return s.repo.FindAll()
}

func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.repo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("supplier")
		}
		return nil, err
	}
	return supplier, nil
}
