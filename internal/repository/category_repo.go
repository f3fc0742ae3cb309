package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	List(params pagination.Params) ([]model.Category, int64, error)
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uuid.UUID, deletedBy string) error
}

var categorySortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) List(params pagination.Params) ([]model.Category, int64, error) {
	var categories []model.Category
	var total int64

	q := r.db.Model(&model.Category{})
	if params.Search != "" {
		q = q.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(orderClause(categorySortColumns, params, "name asc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&categories).Error
	return categories, total, err
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Category{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Category{}, "id = ?", id).Error
}
