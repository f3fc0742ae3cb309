package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type CreditType string

const (
	CreditPayable    CreditType = "PAYABLE"    // owed to a supplier
	CreditReceivable CreditType = "RECEIVABLE" // owed by a customer
)

type CreditStatus string

const (
	CreditPending CreditStatus = "PENDING"
	CreditPartial CreditStatus = "PARTIAL"
	CreditPaid    CreditStatus = "PAID"
	CreditOverdue CreditStatus = "OVERDUE"
)

var (
	ErrCreditSettled        = errors.New("credit is already settled")
	ErrPaymentNotPositive   = errors.New("payment amount must be greater than zero")
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds outstanding balance")
)

// Credit tracks an outstanding payable or receivable balance created by
// a credit purchase or credit sale. BalanceAmount is authoritative here;
// clients display it without re-deriving.
type Credit struct {
	BaseModel
	Type   CreditType   `gorm:"type:varchar(20);not null;index" json:"type" validate:"required,oneof=PAYABLE RECEIVABLE"`
	Status CreditStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`

	TotalAmount   float64 `gorm:"not null" json:"totalAmount" validate:"required,gt=0"`
	PaidAmount    float64 `gorm:"not null;default:0" json:"paidAmount"`
	BalanceAmount float64 `gorm:"not null" json:"balanceAmount"`

	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplierId"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`
	Customer   *Customer  `json:"customer,omitempty" validate:"-"`
	SaleID     *uuid.UUID `gorm:"type:uuid" json:"saleId"`
	Sale       *Sale      `json:"sale,omitempty" validate:"-"`
	PurchaseID *uuid.UUID `gorm:"type:uuid" json:"purchaseId"`
	Purchase   *Purchase  `json:"purchase,omitempty" validate:"-"`

	DueDate *time.Time `gorm:"index" json:"dueDate,omitempty"`

	Payments []CreditPayment `json:"payments,omitempty" validate:"-"`
}

type CreditPayment struct {
	BaseModel
	CreditID  uuid.UUID `gorm:"type:uuid;not null;index" json:"creditId"`
	Amount    float64   `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Method    string    `gorm:"type:varchar(30)" json:"method"`
	Reference string    `gorm:"type:varchar(100)" json:"reference"`
	PaidAt    time.Time `gorm:"not null" json:"paidAt"`
}

// CanRecordPayment gates the record-payment action: settled credits and
// credits with nothing outstanding accept no further payments.
func (c *Credit) CanRecordPayment() bool {
	return c.Status != CreditPaid && c.BalanceAmount > 0
}

// ApplyPayment applies an amount to the credit, updating paid/balance
// and transitioning status. Overpayment is rejected rather than clamped.
func (c *Credit) ApplyPayment(amount float64) error {
	if !c.CanRecordPayment() {
		return ErrCreditSettled
	}
	if amount <= 0 {
		return ErrPaymentNotPositive
	}
	if amount > c.BalanceAmount {
		return ErrPaymentExceedsBalance
	}

	c.PaidAmount += amount
	c.BalanceAmount = c.TotalAmount - c.PaidAmount
	if c.BalanceAmount <= 0 {
		c.BalanceAmount = 0
		c.Status = CreditPaid
	} else {
		c.Status = CreditPartial
	}
	return nil
}

// IsOverdue reports whether an unsettled credit has passed its due date.
func (c *Credit) IsOverdue(now time.Time) bool {
	if c.DueDate == nil || c.Status == CreditPaid {
		return false
	}
	return now.After(*c.DueDate)
}
