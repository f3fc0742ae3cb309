package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentCredit PaymentType = "CREDIT"
)

type Sale struct {
	BaseModel
	InvoiceNumber string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoiceNumber"`
	SaleDate      time.Time   `gorm:"not null;index" json:"saleDate"`
	PaymentType   PaymentType `gorm:"type:varchar(20);not null;default:'CASH'" json:"paymentType" validate:"omitempty,oneof=CASH CREDIT"`

	CustomerID    *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`
	Customer      *Customer  `json:"customer,omitempty" validate:"-"`
	SalespersonID *uuid.UUID `gorm:"type:uuid;index" json:"salespersonId"`
	Salesperson   *User      `gorm:"foreignKey:SalespersonID" json:"salesperson,omitempty" validate:"-"`

	SubTotal    float64 `gorm:"not null;default:0" json:"subTotal"`
	Discount    float64 `gorm:"not null;default:0" json:"discount" validate:"gte=0"`
	TotalAmount float64 `gorm:"not null;default:0" json:"totalAmount"`

	Items []SaleItem `json:"items" validate:"required,min=1,dive"`
}

// SaleItem quantity is entered in the chosen UOM; the service converts
// to base units before moving stock. LineTotal is a snapshot.
type SaleItem struct {
	BaseModel
	SaleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"saleId"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	Product   *Product       `json:"product,omitempty" validate:"-"`
	UomID     *uuid.UUID     `gorm:"type:uuid" json:"uomId"`
	Uom       *UnitOfMeasure `gorm:"foreignKey:UomID" json:"uom,omitempty" validate:"-"`

	Quantity  float64 `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice" validate:"gte=0"`
	LineTotal float64 `gorm:"not null" json:"lineTotal"`
}
