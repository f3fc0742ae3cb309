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

const CacheTagCustomers = "customers"

type CustomerService interface {
	Create(customer *model.Customer, actor Actor) error
	Update(id uuid.UUID, req *model.Customer, actor Actor) (*model.Customer, error)
	Delete(id uuid.UUID, actor Actor) error
	List(params pagination.Params) ([]model.Customer, int64, error)
	FindAll() ([]model.Customer, error)
	Get(id uuid.UUID) (*model.Customer, error)
}

type customerService struct {
	repo  repository.CustomerRepository
	store *cache.Store
}

func NewCustomerService(repo repository.CustomerRepository, store *cache.Store) CustomerService {
	return &customerService{repo: repo, store: store}
}

func (s *customerService) Create(customer *model.Customer, actor Actor) error {
	if errs := validator.ValidateStruct(customer); len(errs) > 0 {
		return validationError(errs)
	}
	customer.CreatedBy = actor.ID
	customer.UpdatedBy = actor.ID
	customer.IsActive = true
	if err := s.repo.Create(customer); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagCustomers)
	return nil
}

func (s *customerService) Update(id uuid.UUID, req *model.Customer, actor Actor) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apierr.NotFound("customer")
	}
	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.IsActive = req.IsActive
	existing.UpdatedBy = actor.ID
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	s.store.Invalidate(context.Background(), CacheTagCustomers)
	return existing, nil
}

func (s *customerService) Delete(id uuid.UUID, actor Actor) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apierr.NotFound("customer")
	}
	if err := s.repo.Delete(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagCustomers)
	return nil
}

func (s *customerService) List(params pagination.Params) ([]model.Customer, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagCustomers, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page struct {
		Items []model.Customer `json:"items"`
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
	s.store.Set(ctx, key, page, CacheTagCustomers)
	return items, total, nil
}

func (s *customerService) FindAll() ([]model.Customer, error) {
	return s.repo.FindAll()
}

func (s *customerService) Get(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("customer")
		}
		return nil, err
	}
	return customer, nil
}
