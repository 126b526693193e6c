package search

import (
	"strings"

	"agendavet/shared/dto"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Column names a text column matched by a search term.
type Column struct {
	Table string
	Field string
}

// Normalize trims and lowercases term and escapes LIKE metacharacters.
// It reports false when the term is blank, meaning no filter applies.
func Normalize(term string) (string, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false
	}

	return likeEscaper.Replace(strings.ToLower(term)), true
}

// AnyColumn matches rows where at least one of columns contains the normalized term.
func AnyColumn(term string, columns ...Column) dto.FilterGroup {
	filters := make([]any, 0, len(columns))

	for _, col := range columns {
		filters = append(filters, dto.Filter{
			ArgName:  argName(col),
			Field:    col.Field,
			Table:    col.Table,
			Value:    term,
			Operator: dto.FilterOperatorLike,
		})
	}

	return dto.FilterGroup{
		Filters:  filters,
		Operator: dto.FilterGroupOperatorOr,
	}
}

func argName(col Column) string {
	if col.Table == "" {
		return "search_" + col.Field
	}

	return "search_" + col.Table + "_" + col.Field
}
