package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitRepository interface {
	// Unit categories
	CreateCategory(category *model.UnitCategory) error
	ListCategories(params pagination.Params) ([]model.UnitCategory, int64, error)
	FindAllCategories() ([]model.UnitCategory, error)
	FindCategoryByID(id uuid.UUID) (*model.UnitCategory, error)
	UpdateCategory(category *model.UnitCategory) error
	DeleteCategory(id uuid.UUID, deletedBy string) error

	// Units of measure
	CreateUnit(unit *model.UnitOfMeasure) error
	ListUnits(params pagination.Params) ([]model.UnitOfMeasure, int64, error)
	FindAllUnits() ([]model.UnitOfMeasure, error)
	FindUnitByID(id uuid.UUID) (*model.UnitOfMeasure, error)
	FindBaseUnit(categoryID uuid.UUID) (*model.UnitOfMeasure, error)
	UpdateUnit(unit *model.UnitOfMeasure) error
	DeleteUnit(id uuid.UUID, deletedBy string) error
}

var unitSortColumns = map[string]string{
	"name":           "name",
	"abbreviation":   "abbreviation",
	"conversionRate": "conversion_rate",
	"createdAt":      "created_at",
}

type unitRepo struct {
	db *gorm.DB
}

func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db}
}

func (r *unitRepo) CreateCategory(category *model.UnitCategory) error {
	return r.db.Create(category).Error
}

func (r *unitRepo) ListCategories(params pagination.Params) ([]model.UnitCategory, int64, error) {
	var categories []model.UnitCategory
	var total int64

	q := r.db.Model(&model.UnitCategory{})
	if params.Search != "" {
		q = q.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Units").Order(orderClause(categorySortColumns, params, "name asc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&categories).Error
	return categories, total, err
}

func (r *unitRepo) FindAllCategories() ([]model.UnitCategory, error) {
	var categories []model.UnitCategory
	err := r.db.Preload("Units").Order("name").Find(&categories).Error
	return categories, err
}

func (r *unitRepo) FindCategoryByID(id uuid.UUID) (*model.UnitCategory, error) {
	var category model.UnitCategory
	if err := r.db.Preload("Units").First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *unitRepo) UpdateCategory(category *model.UnitCategory) error {
	return r.db.Save(category).Error
}

func (r *unitRepo) DeleteCategory(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.UnitCategory{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.UnitCategory{}, "id = ?", id).Error
}

func (r *unitRepo) CreateUnit(unit *model.UnitOfMeasure) error {
	return r.db.Create(unit).Error
}

func (r *unitRepo) ListUnits(params pagination.Params) ([]model.UnitOfMeasure, int64, error) {
	var units []model.UnitOfMeasure
	var total int64

	q := r.db.Model(&model.UnitOfMeasure{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("name ILIKE ? OR abbreviation ILIKE ?", like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("UnitCategory").Order(orderClause(unitSortColumns, params, "name asc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&units).Error
	return units, total, err
}

func (r *unitRepo) FindAllUnits() ([]model.UnitOfMeasure, error) {
	var units []model.UnitOfMeasure
	err := r.db.Preload("UnitCategory").Order("name").Find(&units).Error
	return units, err
}

func (r *unitRepo) FindUnitByID(id uuid.UUID) (*model.UnitOfMeasure, error) {
	var unit model.UnitOfMeasure
	if err := r.db.Preload("UnitCategory").First(&unit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// FindBaseUnit returns the base unit of a category, or gorm's not-found
// error when the category has none yet.
func (r *unitRepo) FindBaseUnit(categoryID uuid.UUID) (*model.UnitOfMeasure, error) {
	var unit model.UnitOfMeasure
	err := r.db.First(&unit, "unit_category_id = ? AND base_unit = true", categoryID).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepo) UpdateUnit(unit *model.UnitOfMeasure) error {
	return r.db.Save(unit).Error
}

func (r *unitRepo) DeleteUnit(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.UnitOfMeasure{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.UnitOfMeasure{}, "id = ?", id).Error
}
