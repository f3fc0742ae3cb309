package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextBalance(t *testing.T) {
	assert.Equal(t, 100.0, NextBalance(0, 100, 0, 0), "opening stock")
	assert.Equal(t, 70.0, NextBalance(100, 0, 30, 0), "sale")
	assert.Equal(t, 170.0, NextBalance(70, 100, 0, 0), "purchase")
	assert.Equal(t, 165.0, NextBalance(170, 0, 0, 5), "loss adjustment")
}

func TestNextBalanceRunningLedger(t *testing.T) {
	// Replay a ledger the way the stock services build it: each entry's
	// balance feeds the next.
	type movement struct{ in, out, loss float64 }
	movements := []movement{
		{in: 500},
		{out: 120},
		{out: 80},
		{in: 200},
		{loss: 10},
	}

	balance := 0.0
	for _, m := range movements {
		balance = NextBalance(balance, m.in, m.out, m.loss)
	}
	assert.Equal(t, 490.0, balance)
}

func TestIsLowStock(t *testing.T) {
	p := Product{MinLevel: 50, Quantity: 49}
	assert.True(t, p.IsLowStock())

	p.Quantity = 50
	assert.True(t, p.IsLowStock(), "boundary counts as low")

	p.Quantity = 51
	assert.False(t, p.IsLowStock())

	// MinLevel zero disables the check entirely.
	none := Product{MinLevel: 0, Quantity: 0}
	assert.False(t, none.IsLowStock())
}
