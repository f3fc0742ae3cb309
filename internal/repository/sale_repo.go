package repository

import (
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	List(params pagination.Params) ([]model.Sale, int64, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	CountSince(since time.Time) (int64, error)
	SumSince(since time.Time) (float64, error)
	NextInvoiceNumber() (string, error)
}

var saleSortColumns = map[string]string{
	"invoiceNumber": "invoice_number",
	"saleDate":      "sale_date",
	"totalAmount":   "total_amount",
	"createdAt":     "created_at",
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) List(params pagination.Params) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.Model(&model.Sale{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("invoice_number ILIKE ?", like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Customer").Preload("Salesperson").Preload("Items.Product").Preload("Items.Uom").
		Order(orderClause(saleSortColumns, params, "sale_date desc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Customer").Preload("Salesperson").
		Preload("Items.Product").Preload("Items.Uom").
		First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).Where("sale_date >= ?", since).Count(&count).Error
	return count, err
}

func (r *saleRepo) SumSince(since time.Time) (float64, error) {
	var sum float64
	err := r.db.Model(&model.Sale{}).Where("sale_date >= ?", since).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&sum).Error
	return sum, err
}

// NextInvoiceNumber suggests the next sequential invoice number.
// Uniqueness is still guaranteed by the index; a collision under
// concurrency surfaces as a duplicate-key conflict.
func (r *saleRepo) NextInvoiceNumber() (string, error) {
	var count int64
	if err := r.db.Model(&model.Sale{}).Unscoped().Count(&count).Error; err != nil {
		return "", err
	}
	return formatSequence("INV", count+1), nil
}
