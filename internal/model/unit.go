package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitCategory groups units that convert into each other, e.g. "Tablet
// forms" with base unit "tablet" and a "box" at rate 100. Product
// quantities are always stored in the category's base unit.
type UnitCategory struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`

	Units []UnitOfMeasure `gorm:"foreignKey:UnitCategoryID" json:"units,omitempty" validate:"-"`
}

// UnitOfMeasure is a named unit with a conversion factor to its
// category's base unit. Invariants (enforced by the unit service):
// at most one base unit per category, and a base unit's rate is 1.
type UnitOfMeasure struct {
	BaseModel
	Name           string          `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Abbreviation   string          `gorm:"type:varchar(20);not null" json:"abbreviation" validate:"required,max=20"`
	ConversionRate decimal.Decimal `gorm:"type:decimal(20,6);not null;default:1" json:"conversionRate"`
	BaseUnit       bool            `gorm:"default:false" json:"baseUnit"`
	UnitCategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"unitCategoryId" validate:"uuid_required"`
	UnitCategory   *UnitCategory   `json:"unitCategory,omitempty" validate:"-"`
}

// effectiveRate returns the conversion rate with the decided fallback
// policy: a missing, non-positive or otherwise unusable rate counts
// as 1 so display conversion never divides by zero and never errors.
func (u UnitOfMeasure) effectiveRate() decimal.Decimal {
	if u.ConversionRate.Sign() <= 0 {
		return decimal.NewFromInt(1)
	}
	return u.ConversionRate
}

// ConvertFromBase converts a base-unit quantity into this unit for
// display: quantity / rate.
func (u UnitOfMeasure) ConvertFromBase(quantity float64) float64 {
	result, _ := decimal.NewFromFloat(quantity).Div(u.effectiveRate()).Float64()
	return result
}

// ConvertToBase is the inverse of ConvertFromBase: quantity * rate.
func (u UnitOfMeasure) ConvertToBase(quantity float64) float64 {
	result, _ := decimal.NewFromFloat(quantity).Mul(u.effectiveRate()).Float64()
	return result
}
