package repository

import (
	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	List(params pagination.Params) ([]model.Purchase, int64, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	NextReferenceNumber() (string, error)
}

var purchaseSortColumns = map[string]string{
	"referenceNumber": "reference_number",
	"purchaseDate":    "purchase_date",
	"totalAmount":     "total_amount",
	"createdAt":       "created_at",
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) List(params pagination.Params) ([]model.Purchase, int64, error) {
	var purchases []model.Purchase
	var total int64

	q := r.db.Model(&model.Purchase{})
	if params.Search != "" {
		q = q.Where("reference_number ILIKE ?", "%"+params.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Supplier").Preload("Items.Product").Preload("Items.Uom").
		Order(orderClause(purchaseSortColumns, params, "purchase_date desc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Supplier").Preload("Items.Product").Preload("Items.Uom").
		First(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) NextReferenceNumber() (string, error) {
	var count int64
	if err := r.db.Model(&model.Purchase{}).Unscoped().Count(&count).Error; err != nil {
		return "", err
	}
	return formatSequence("PUR", count+1), nil
}
