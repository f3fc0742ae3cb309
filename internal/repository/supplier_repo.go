package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	List(params pagination.Params) ([]model.Supplier, int64, error)
	FindAll() ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID, deletedBy string) error
}

var supplierSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) List(params pagination.Params) ([]model.Supplier, int64, error) {
	var suppliers []model.Supplier
	var total int64

	q := r.db.Model(&model.Supplier{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(orderClause(supplierSortColumns, params, "name asc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&suppliers).Error
	return suppliers, total, err
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Where("is_active = true").Order("name").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Supplier{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}
