package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	List(params pagination.Params) ([]model.Product, int64, error)
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCode(code string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID, deletedBy string) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity float64, updatedBy string) error
	LowStock() ([]model.Product, error)
}

// productSortColumns whitelists sortBy values against SQL injection.
var productSortColumns = map[string]string{
	"name":          "name",
	"productCode":   "product_code",
	"quantity":      "quantity",
	"sellingPrice":  "selling_price",
	"purchasePrice": "purchase_price",
	"createdAt":     "created_at",
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Category").Preload("Manufacturer").Preload("UnitCategory").
		Preload("DefaultUom").Preload("PurchaseUom")
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) List(params pagination.Params) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.Model(&model.Product{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("name ILIKE ? OR product_code ILIKE ? OR generic_name ILIKE ?", like, like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = r.preload(q).Order(orderClause(productSortColumns, params, "created_at desc")).
		Offset(params.Offset()).Limit(params.Limit)
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("DefaultUom").Preload("UnitCategory.Units").
		Where("status = ?", model.ProductActive).Order("name").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.preload(r.db).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "product_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Product{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// UpdateQuantity takes *gorm.DB so stock movements run inside the
// caller's transaction.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity float64, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_by": updatedBy,
		}).Error
}

func (r *productRepo) LowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("min_level > 0 AND quantity <= min_level AND status = ?", model.ProductActive).
		Find(&products).Error
	return products, err
}
