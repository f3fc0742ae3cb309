package repository

import (
	"fmt"

	"go-pharmacy-api/pkg/pagination"
)

// orderClause resolves the requested sort column through a per-entity
// whitelist, falling back to a default ordering when the column is
// unknown or absent.
func orderClause(allowed map[string]string, params pagination.Params, fallback string) string {
	column, ok := allowed[params.SortBy]
	if !ok {
		return fallback
	}
	return column + " " + params.SortOrder
}

// formatSequence renders document numbers such as INV-00042.
func formatSequence(prefix string, n int64) string {
	return fmt.Sprintf("%s-%05d", prefix, n)
}
