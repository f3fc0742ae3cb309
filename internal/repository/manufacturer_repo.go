package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManufacturerRepository interface {
	Create(manufacturer *model.Manufacturer) error
	List(params pagination.Params) ([]model.Manufacturer, int64, error)
	FindAll() ([]model.Manufacturer, error)
	FindByID(id uuid.UUID) (*model.Manufacturer, error)
	Update(manufacturer *model.Manufacturer) error
	Delete(id uuid.UUID, deletedBy string) error
}

var manufacturerSortColumns = map[string]string{
	"name":      "name",
	"country":   "country",
	"createdAt": "created_at",
}

type manufacturerRepo struct {
	db *gorm.DB
}

func NewManufacturerRepo(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepo{db}
}

func (r *manufacturerRepo) Create(manufacturer *model.Manufacturer) error {
	return r.db.Create(manufacturer).Error
}

func (r *manufacturerRepo) List(params pagination.Params) ([]model.Manufacturer, int64, error) {
	var manufacturers []model.Manufacturer
	var total int64

	q := r.db.Model(&model.Manufacturer{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("name ILIKE ? OR country ILIKE ?", like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(orderClause(manufacturerSortColumns, params, "name asc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&manufacturers).Error
	return manufacturers, total, err
}

func (r *manufacturerRepo) FindAll() ([]model.Manufacturer, error) {
	var manufacturers []model.Manufacturer
	err := r.db.Order("name").Find(&manufacturers).Error
	return manufacturers, err
}

func (r *manufacturerRepo) FindByID(id uuid.UUID) (*model.Manufacturer, error) {
	var manufacturer model.Manufacturer
	if err := r.db.First(&manufacturer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepo) Update(manufacturer *model.Manufacturer) error {
	return r.db.Save(manufacturer).Error
}

func (r *manufacturerRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Manufacturer{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Manufacturer{}, "id = ?", id).Error
}
