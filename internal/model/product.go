package model

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVE"
	ProductInactive ProductStatus = "INACTIVE"
)

// Product quantity is always stored in the unit category's base unit;
// UOM conversion is a display/entry transform only.
type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null;index" json:"name" validate:"required,max=255"`
	ProductCode string `gorm:"type:varchar(50);uniqueIndex;not null" json:"productCode" validate:"required,max=50"`
	GenericName string `gorm:"type:varchar(255)" json:"genericName"`
	Description string `gorm:"type:text" json:"description"`

	CategoryID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"categoryId" validate:"uuid_required"`
	Category       *Category     `json:"category,omitempty" validate:"-"`
	ManufacturerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"manufacturerId" validate:"uuid_required"`
	Manufacturer   *Manufacturer `json:"manufacturer,omitempty" validate:"-"`
	UnitCategoryID uuid.UUID     `gorm:"type:uuid;not null;index" json:"unitCategoryId" validate:"uuid_required"`
	UnitCategory   *UnitCategory `json:"unitCategory,omitempty" validate:"-"`

	DefaultUomID  *uuid.UUID     `gorm:"type:uuid" json:"defaultUomId"`
	DefaultUom    *UnitOfMeasure `gorm:"foreignKey:DefaultUomID" json:"defaultUom,omitempty" validate:"-"`
	PurchaseUomID *uuid.UUID     `gorm:"type:uuid" json:"purchaseUomId"`
	PurchaseUom   *UnitOfMeasure `gorm:"foreignKey:PurchaseUomID" json:"purchaseUom,omitempty" validate:"-"`

	Quantity      float64 `gorm:"not null;default:0" json:"quantity"` // in base units
	PurchasePrice float64 `gorm:"not null;default:0" json:"purchasePrice" validate:"gte=0"`
	SellingPrice  float64 `gorm:"not null;default:0" json:"sellingPrice" validate:"gte=0"`
	MinLevel      float64 `gorm:"not null;default:0" json:"minLevel" validate:"gte=0"`

	BatchNumber string        `gorm:"type:varchar(50)" json:"batchNumber"`
	ExpiryDate  *time.Time    `gorm:"type:date" json:"expiryDate,omitempty"`
	Status      ProductStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`

	BinCardEntries []BinCardEntry `json:"-" validate:"-"`
}

// IsLowStock reports whether the on-hand quantity has fallen to or
// below the configured minimum level.
func (p *Product) IsLowStock() bool {
	return p.MinLevel > 0 && p.Quantity <= p.MinLevel
}
