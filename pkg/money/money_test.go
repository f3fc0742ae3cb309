package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGroupsThousandsAndPadsDecimals(t *testing.T) {
	f := New("ETB")

	assert.Equal(t, "ETB 1,234.50", f.Format(1234.5))
	assert.Equal(t, "ETB 0.00", f.Format(0))
	assert.Equal(t, "ETB 1,000,000.00", f.Format(1000000))
	assert.Equal(t, "ETB 99.99", f.Format(99.99))
}

func TestFormatRoundsToTwoDecimals(t *testing.T) {
	f := New("ETB")
	assert.Equal(t, "ETB 10.57", f.Format(10.566))
}

func TestEmptyCodeFallsBack(t *testing.T) {
	f := New("")
	assert.Equal(t, DefaultCurrencyCode, f.Code())
	assert.Equal(t, "ETB 5.00", f.Format(5))
}
