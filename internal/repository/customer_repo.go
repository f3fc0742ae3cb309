package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	List(params pagination.Params) ([]model.Customer, int64, error)
	FindAll() ([]model.Customer, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uuid.UUID, deletedBy string) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) List(params pagination.Params) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	q := r.db.Model(&model.Customer{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(orderClause(supplierSortColumns, params, "name asc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&customers).Error
	return customers, total, err
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Where("is_active = true").Order("name").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Customer{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}
