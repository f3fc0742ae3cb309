package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePercentage(t *testing.T) {
	cfg := CommissionConfig{RateType: RatePercentage, Rate: 5}

	amount, rate := cfg.Compute(2000)
	assert.Equal(t, 100.0, amount)
	assert.Equal(t, 5.0, rate)
}

func TestComputeFlatIgnoresSaleTotal(t *testing.T) {
	cfg := CommissionConfig{RateType: RateFlat, Rate: 75}

	amount, rate := cfg.Compute(2000)
	assert.Equal(t, 75.0, amount)
	assert.Equal(t, 75.0, rate)

	amount, _ = cfg.Compute(50)
	assert.Equal(t, 75.0, amount)
}

func TestMarkPaid(t *testing.T) {
	now := time.Now()
	commission := Commission{Status: CommissionPending}

	require.True(t, commission.CanMarkPaid())
	require.NoError(t, commission.MarkPaid(now))
	assert.Equal(t, CommissionPaid, commission.Status)
	require.NotNil(t, commission.PaidDate)
	assert.Equal(t, now, *commission.PaidDate)
}

func TestMarkPaidOnlyWhenPending(t *testing.T) {
	now := time.Now()

	paid := Commission{Status: CommissionPaid}
	assert.False(t, paid.CanMarkPaid())
	assert.ErrorIs(t, paid.MarkPaid(now), ErrCommissionNotPending)

	cancelled := Commission{Status: CommissionCancelled}
	assert.False(t, cancelled.CanMarkPaid())
	assert.ErrorIs(t, cancelled.MarkPaid(now), ErrCommissionNotPending)
}
