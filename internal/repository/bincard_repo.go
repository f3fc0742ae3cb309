package repository

import (
	"time"

	"go-pharmacy-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovementData aggregates daily in/out quantities for the
// dashboard chart.
type StockMovementData struct {
	Date     string  `json:"date"`
	Inbound  float64 `json:"inbound"`
	Outbound float64 `json:"outbound"`
}

type BinCardRepository interface {
	// Append writes a ledger row inside the caller's stock transaction.
	Append(tx *gorm.DB, entry *model.BinCardEntry) error
	FindByProduct(productID uuid.UUID) ([]model.BinCardEntry, error)
	LastBalance(tx *gorm.DB, productID uuid.UUID) (float64, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

type binCardRepo struct {
	db *gorm.DB
}

func NewBinCardRepo(db *gorm.DB) BinCardRepository {
	return &binCardRepo{db}
}

func (r *binCardRepo) Append(tx *gorm.DB, entry *model.BinCardEntry) error {
	return tx.Create(entry).Error
}

func (r *binCardRepo) FindByProduct(productID uuid.UUID) ([]model.BinCardEntry, error) {
	var entries []model.BinCardEntry
	err := r.db.Where("product_id = ?", productID).
		Order("entry_date ASC, created_at ASC").Find(&entries).Error
	return entries, err
}

// LastBalance reads the most recent running balance for a product; a
// product with no ledger yet starts at zero.
func (r *binCardRepo) LastBalance(tx *gorm.DB, productID uuid.UUID) (float64, error) {
	var entry model.BinCardEntry
	err := tx.Where("product_id = ?", productID).
		Order("entry_date DESC, created_at DESC").First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return entry.Balance, nil
}

func (r *binCardRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.BinCardEntry{}).
		Select(`
			DATE(entry_date) as date,
			COALESCE(SUM(quantity_in), 0) as inbound,
			COALESCE(SUM(quantity_out + loss_adjustment), 0) as outbound
		`).
		Where("entry_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(entry_date)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}
	return results, nil
}
