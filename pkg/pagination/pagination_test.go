package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	p := Params{Page: 0, Limit: 0, SortOrder: "DESC", Search: "  asp  "}
	p.Normalize()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, "asp", p.Search)
}

func TestNormalizeCapsLimit(t *testing.T) {
	p := Params{Page: 3, Limit: 500}
	p.Normalize()

	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty set still has one page", 0, 10, 1},
		{"exact multiple", 100, 10, 10},
		{"partial last page", 101, 10, 11},
		{"single item", 1, 10, 1},
		{"bad limit falls back", 25, 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageCount(tc.total, tc.limit))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 1, Clamp(-2, 5))
	assert.Equal(t, 3, Clamp(3, 5))
	assert.Equal(t, 5, Clamp(9, 5))
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page1, p := Slice(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, page1)
	assert.Equal(t, 1, p)

	page3, p := Slice(items, 3, 3)
	assert.Equal(t, []int{7}, page3)
	assert.Equal(t, 3, p)

	// A page past the end clamps to the last page instead of coming
	// back empty.
	clamped, p := Slice(items, 9, 3)
	assert.Equal(t, []int{7}, clamped)
	assert.Equal(t, 3, p)
}

func TestSliceEmpty(t *testing.T) {
	got, p := Slice([]string{}, 4, 10)
	assert.Empty(t, got)
	assert.Equal(t, 1, p)
}
