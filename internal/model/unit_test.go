package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvertRoundTrip(t *testing.T) {
	box := UnitOfMeasure{ConversionRate: decimal.NewFromInt(100)}

	// 250 tablets shown in boxes and back.
	inBoxes := box.ConvertFromBase(250)
	assert.InDelta(t, 2.5, inBoxes, 1e-9)
	assert.InDelta(t, 250, box.ConvertToBase(inBoxes), 1e-9)
}

func TestConvertFractionalRate(t *testing.T) {
	halfPack := UnitOfMeasure{ConversionRate: decimal.NewFromFloat(0.5)}

	assert.InDelta(t, 20, halfPack.ConvertFromBase(10), 1e-9)
	assert.InDelta(t, 10, halfPack.ConvertToBase(20), 1e-9)
}

func TestZeroAndNegativeRatesCountAsOne(t *testing.T) {
	zero := UnitOfMeasure{}
	assert.InDelta(t, 42, zero.ConvertFromBase(42), 1e-9)
	assert.InDelta(t, 42, zero.ConvertToBase(42), 1e-9)

	negative := UnitOfMeasure{ConversionRate: decimal.NewFromInt(-3)}
	assert.InDelta(t, 42, negative.ConvertFromBase(42), 1e-9)
	assert.InDelta(t, 42, negative.ConvertToBase(42), 1e-9)
}
