package model

import (
	gDto "agendavet/shared/dto"
	"agendavet/shared/search"
)

const (
	TableName  = "pets"
	EntityName = "pet"

	FieldID        = "id"
	FieldName      = "name"
	FieldSpecies   = "species"
	FieldBreed     = "breed"
	FieldAge       = "age"
	FieldOwnerName = "owner_name"
)

type Pet struct {
	ID        int64  `db:"id"         insert:"false"`
	Name      string `db:"name"`
	Species   string `db:"species"`
	Breed     string `db:"breed"`
	Age       int    `db:"age"`
	OwnerName string `db:"owner_name"`
}

// DefaultOrder lists pets alphabetically, with id breaking ties.
func DefaultOrder() gDto.QueryParams {
	return gDto.QueryParams{
		Sorts: []gDto.Sort{
			{Field: FieldName, Table: TableName, Dir: gDto.SortDirAsc},
			{Field: FieldID, Table: TableName, Dir: gDto.SortDirAsc},
		},
	}
}

// SearchFilter matches pets whose name or owner contains term, ignoring case.
// A blank term yields an empty filter and false.
func SearchFilter(term string) (gDto.FilterGroup, bool) {
	normalized, ok := search.Normalize(term)
	if !ok {
		return gDto.FilterGroup{}, false
	}

	return search.AnyColumn(normalized,
		search.Column{Table: TableName, Field: FieldName},
		search.Column{Table: TableName, Field: FieldOwnerName},
	), true
}
