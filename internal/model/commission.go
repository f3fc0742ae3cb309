package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type CommissionRateType string

const (
	RatePercentage CommissionRateType = "PERCENTAGE"
	RateFlat       CommissionRateType = "FLAT"
)

type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "PENDING"
	CommissionPaid      CommissionStatus = "PAID"
	CommissionCancelled CommissionStatus = "CANCELLED"
)

var ErrCommissionNotPending = errors.New("only pending commissions can be paid")

// CommissionConfig defines how a salesperson earns commission.
type CommissionConfig struct {
	BaseModel
	SalespersonID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"salespersonId" validate:"uuid_required"`
	Salesperson   *User              `gorm:"foreignKey:SalespersonID" json:"salesperson,omitempty" validate:"-"`
	RateType      CommissionRateType `gorm:"type:varchar(20);not null;default:'PERCENTAGE'" json:"rateType" validate:"omitempty,oneof=PERCENTAGE FLAT"`
	Rate          float64            `gorm:"not null" json:"rate" validate:"required,gt=0"`
	IsActive      bool               `gorm:"default:true" json:"isActive"`
}

// Compute returns the commission amount for a sale total along with the
// rate that was applied (the stored rate; for flat configs the amount
// ignores the sale total).
func (cfg *CommissionConfig) Compute(saleAmount float64) (amount, rate float64) {
	if cfg.RateType == RateFlat {
		return cfg.Rate, cfg.Rate
	}
	return saleAmount * cfg.Rate / 100, cfg.Rate
}

// Commission is the accrued payout owed to a salesperson for one sale.
type Commission struct {
	BaseModel
	SalespersonID uuid.UUID `gorm:"type:uuid;not null;index" json:"salespersonId"`
	Salesperson   *User     `gorm:"foreignKey:SalespersonID" json:"salesperson,omitempty" validate:"-"`
	SaleID        uuid.UUID `gorm:"type:uuid;not null;index" json:"saleId"`
	Sale          *Sale     `json:"sale,omitempty" validate:"-"`

	SaleAmount       float64          `gorm:"not null" json:"saleAmount"`
	CommissionRate   float64          `gorm:"not null" json:"commissionRate"`
	CommissionAmount float64          `gorm:"not null" json:"commissionAmount"`
	Status           CommissionStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	PaidDate         *time.Time       `json:"paidDate,omitempty"`
}

// CanMarkPaid gates the payout action: only pending rows expose it.
func (c *Commission) CanMarkPaid() bool {
	return c.Status == CommissionPending
}

// MarkPaid transitions PENDING -> PAID, stamping the paid date.
func (c *Commission) MarkPaid(now time.Time) error {
	if !c.CanMarkPaid() {
		return ErrCommissionNotPending
	}
	c.Status = CommissionPaid
	c.PaidDate = &now
	return nil
}
