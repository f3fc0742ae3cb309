package model

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	BaseModel
	ReferenceNumber string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"referenceNumber"`
	PurchaseDate    time.Time   `gorm:"not null;index" json:"purchaseDate"`
	PaymentType     PaymentType `gorm:"type:varchar(20);not null;default:'CASH'" json:"paymentType" validate:"omitempty,oneof=CASH CREDIT"`

	SupplierID uuid.UUID `gorm:"type:uuid;not null;index" json:"supplierId" validate:"uuid_required"`
	Supplier   *Supplier `json:"supplier,omitempty" validate:"-"`

	SubTotal    float64 `gorm:"not null;default:0" json:"subTotal"`
	Discount    float64 `gorm:"not null;default:0" json:"discount" validate:"gte=0"`
	TotalAmount float64 `gorm:"not null;default:0" json:"totalAmount"`

	Items []PurchaseItem `json:"items" validate:"required,min=1,dive"`
}

type PurchaseItem struct {
	BaseModel
	PurchaseID uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchaseId"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	Product    *Product       `json:"product,omitempty" validate:"-"`
	UomID      *uuid.UUID     `gorm:"type:uuid" json:"uomId"`
	Uom        *UnitOfMeasure `gorm:"foreignKey:UomID" json:"uom,omitempty" validate:"-"`

	Quantity  float64 `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitCost  float64 `gorm:"not null" json:"unitCost" validate:"gte=0"`
	LineTotal float64 `gorm:"not null" json:"lineTotal"`
}
