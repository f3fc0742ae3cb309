package repository

import (
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditListFilter narrows credit listings beyond free-text search.
type CreditListFilter struct {
	Type   model.CreditType
	Status model.CreditStatus
}

type CreditRepository interface {
	List(params pagination.Params, filter CreditListFilter) ([]model.Credit, int64, error)
	FindByID(id uuid.UUID) (*model.Credit, error)
	FindOverdueCandidates(now time.Time) ([]model.Credit, error)
	OutstandingTotal(creditType model.CreditType) (float64, error)
}

var creditSortColumns = map[string]string{
	"totalAmount":   "total_amount",
	"balanceAmount": "balance_amount",
	"dueDate":       "due_date",
	"status":        "status",
	"createdAt":     "created_at",
}

type creditRepo struct {
	db *gorm.DB
}

func NewCreditRepo(db *gorm.DB) CreditRepository {
	return &creditRepo{db}
}

func (r *creditRepo) List(params pagination.Params, filter CreditListFilter) ([]model.Credit, int64, error) {
	var credits []model.Credit
	var total int64

	q := r.db.Model(&model.Credit{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Joins("LEFT JOIN suppliers ON suppliers.id = credits.supplier_id").
			Joins("LEFT JOIN customers ON customers.id = credits.customer_id").
			Where("suppliers.name ILIKE ? OR customers.name ILIKE ?", like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Supplier").Preload("Customer").Preload("Payments").
		Order(orderClause(creditSortColumns, params, "created_at desc")).
		Offset(params.Offset()).Limit(params.Limit).Find(&credits).Error
	return credits, total, err
}

func (r *creditRepo) FindByID(id uuid.UUID) (*model.Credit, error) {
	var credit model.Credit
	err := r.db.Preload("Supplier").Preload("Customer").Preload("Sale").
		Preload("Purchase").Preload("Payments").
		First(&credit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &credit, nil
}

// FindOverdueCandidates returns unsettled credits whose due date has
// passed but which are not flagged OVERDUE yet.
func (r *creditRepo) FindOverdueCandidates(now time.Time) ([]model.Credit, error) {
	var credits []model.Credit
	err := r.db.Where("status IN ? AND due_date IS NOT NULL AND due_date < ?",
		[]model.CreditStatus{model.CreditPending, model.CreditPartial}, now).
		Find(&credits).Error
	return credits, err
}

func (r *creditRepo) OutstandingTotal(creditType model.CreditType) (float64, error) {
	var sum float64
	err := r.db.Model(&model.Credit{}).
		Where("type = ? AND status <> ?", creditType, model.CreditPaid).
		Select("COALESCE(SUM(balance_amount), 0)").Scan(&sum).Error
	return sum, err
}
