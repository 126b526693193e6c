package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type Sort struct {
	Field string
	Table string
	Dir   string
}

func (s Sort) column() string {
	if s.Table == "" {
		return s.Field
	}

	return fmt.Sprintf("%s.%s", s.Table, s.Field)
}

// QueryParams carries the ordering applied to a listing. Listings are never paginated.
type QueryParams struct {
	Sorts []Sort
}

// OrderClause renders the ORDER BY clause, or an empty string when no sort is set.
// Unknown directions fall back to ascending.
func (q QueryParams) OrderClause() string {
	if len(q.Sorts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(q.Sorts))

	for _, sort := range q.Sorts {
		if sort.Field == "" {
			continue
		}

		dir := strings.ToUpper(sort.Dir)
		if dir != SortDirDesc {
			dir = SortDirAsc
		}

		parts = append(parts, sort.column()+" "+dir)
	}

	if len(parts) == 0 {
		return ""
	}

	return "ORDER BY " + strings.Join(parts, ", ")
}
