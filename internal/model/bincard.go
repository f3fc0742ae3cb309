package model

import (
	"time"

	"github.com/google/uuid"
)

type BinCardSource string

const (
	BinCardSale       BinCardSource = "SALE"
	BinCardPurchase   BinCardSource = "PURCHASE"
	BinCardAdjustment BinCardSource = "ADJUSTMENT"
	BinCardOpening    BinCardSource = "OPENING"
)

// BinCardEntry is one append-only stock-ledger row for a product. The
// running balance is computed when the row is written and never
// recomputed on read; the ledger is display-only after that.
type BinCardEntry struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Product   *Product  `json:"product,omitempty"`

	EntryDate      time.Time     `gorm:"not null;index" json:"entryDate"`
	DocumentNumber string        `gorm:"type:varchar(50);not null" json:"documentNumber"`
	SourceType     BinCardSource `gorm:"type:varchar(20);not null" json:"sourceType"`

	QuantityIn     float64 `gorm:"not null;default:0" json:"quantityIn"`
	QuantityOut    float64 `gorm:"not null;default:0" json:"quantityOut"`
	LossAdjustment float64 `gorm:"not null;default:0" json:"lossAdjustment"`
	Balance        float64 `gorm:"not null" json:"balance"`
}

// NextBalance advances a running balance by one ledger movement.
func NextBalance(previous, in, out, loss float64) float64 {
	return previous + in - out - loss
}
