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

const CacheTagCategories = "categories"

type CategoryService interface {
	Create(category *model.Category, actor Actor) error
	Update(id uuid.UUID, req *model.Category, actor Actor) (*model.Category, error)
	Delete(id uuid.UUID, actor Actor) error
	List(params pagination.Params) ([]model.Category, int64, error)
	FindAll() ([]model.Category, error)
	Get(id uuid.UUID) (*model.Category, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	store *cache.Store
}

func NewCategoryService(repo repository.CategoryRepository, store *cache.Store) CategoryService {
	return &categoryService{repo: repo, store: store}
}

func (s *categoryService) Create(category *model.Category, actor Actor) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return validationError(errs)
	}
	category.CreatedBy = actor.ID
	category.UpdatedBy = actor.ID
	if err := s.repo.Create(category); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagCategories)
	return nil
}

func (s *categoryService) Update(id uuid.UUID, req *model.Category, actor Actor) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apierr.NotFound("category")
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedBy = actor.ID
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	s.store.Invalidate(context.Background(), CacheTagCategories)
	return existing, nil
}

func (s *categoryService) Delete(id uuid.UUID, actor Actor) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apierr.NotFound("category")
	}
	if err := s.repo.Delete(id, actor.ID); err != nil {
		return err
	}
	s.store.Invalidate(context.Background(), CacheTagCategories)
	return nil
}

func (s *categoryService) List(params pagination.Params) ([]model.Category, int64, error) {
	ctx := context.Background()
	key := cache.ListKey(CacheTagCategories, params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder)

	var page struct {
		Items []model.Category `json:"items"`
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
	s.store.Set(ctx, key, page, CacheTagCategories)
	return items, total, nil
}

func (s *categoryService) FindAll() ([]model.Category, error) {
	return s.repo.FindAll()
}

func (s *categoryService) Get(id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if notFound(err) {
			return nil, apierr.NotFound("category")
		}
		return nil, err
	}
	return category, nil
}
