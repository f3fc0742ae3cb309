package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredit(total float64) *Credit {
	return &Credit{
		Type:          CreditReceivable,
		Status:        CreditPending,
		TotalAmount:   total,
		BalanceAmount: total,
	}
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	credit := newCredit(1000)

	require.NoError(t, credit.ApplyPayment(400))
	assert.Equal(t, CreditPartial, credit.Status)
	assert.Equal(t, 400.0, credit.PaidAmount)
	assert.Equal(t, 600.0, credit.BalanceAmount)

	require.NoError(t, credit.ApplyPayment(600))
	assert.Equal(t, CreditPaid, credit.Status)
	assert.Equal(t, 0.0, credit.BalanceAmount)
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	credit := newCredit(100)

	err := credit.ApplyPayment(150)
	assert.ErrorIs(t, err, ErrPaymentExceedsBalance)
	// Nothing changed.
	assert.Equal(t, CreditPending, credit.Status)
	assert.Equal(t, 100.0, credit.BalanceAmount)
}

func TestApplyPaymentRejectsNonPositive(t *testing.T) {
	credit := newCredit(100)

	assert.ErrorIs(t, credit.ApplyPayment(0), ErrPaymentNotPositive)
	assert.ErrorIs(t, credit.ApplyPayment(-5), ErrPaymentNotPositive)
}

func TestApplyPaymentOnSettledCredit(t *testing.T) {
	credit := newCredit(100)
	require.NoError(t, credit.ApplyPayment(100))

	assert.ErrorIs(t, credit.ApplyPayment(1), ErrCreditSettled)
}

func TestCanRecordPayment(t *testing.T) {
	credit := newCredit(100)
	assert.True(t, credit.CanRecordPayment())

	// Overdue credits still accept payments.
	credit.Status = CreditOverdue
	assert.True(t, credit.CanRecordPayment())

	credit.Status = CreditPaid
	assert.False(t, credit.CanRecordPayment())

	// Zero balance gates the action even if the status lagged.
	credit = newCredit(100)
	credit.BalanceAmount = 0
	assert.False(t, credit.CanRecordPayment())
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	credit := newCredit(100)
	assert.False(t, credit.IsOverdue(now), "no due date")

	credit.DueDate = &future
	assert.False(t, credit.IsOverdue(now))

	credit.DueDate = &past
	assert.True(t, credit.IsOverdue(now))

	credit.Status = CreditPaid
	assert.False(t, credit.IsOverdue(now), "settled credits are never overdue")
}
