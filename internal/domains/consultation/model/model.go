package model

import (
	"database/sql"
	"fmt"
	"time"

	petModel "agendavet/internal/domains/pet/model"
	gDto "agendavet/shared/dto"
	"agendavet/shared/search"
)

const (
	TableName  = "consultations"
	EntityName = "consultation"

	FieldID               = "id"
	FieldPetID            = "pet_id"
	FieldVeterinarianName = "veterinarian_name"
	FieldDate             = "date"
	FieldTime             = "time"
	FieldReason           = "reason"
	FieldStatus           = "status"
)

const (
	StatusPending   = "Pending"
	StatusScheduled = "Scheduled"
)

type Consultation struct {
	ID               int64     `db:"id"                insert:"false"`
	PetID            int64     `db:"pet_id"`
	VeterinarianName string    `db:"veterinarian_name"`
	Date             time.Time `db:"date"`
	Time             string    `db:"time"`
	Reason           string    `db:"reason"`
	Status           string    `db:"status"`

	// Owning pet, absent when the pet row no longer exists.
	PetRefID     sql.NullInt64  `db:"pet_ref_id"     table:"pets" column:"id"`
	PetName      sql.NullString `db:"pet_name"       table:"pets" column:"name"`
	PetSpecies   sql.NullString `db:"pet_species"    table:"pets" column:"species"`
	PetOwnerName sql.NullString `db:"pet_owner_name" table:"pets" column:"owner_name"`
}

func (Consultation) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.%s = %s.%s",
		petModel.TableName,
		petModel.TableName, petModel.FieldID,
		TableName, FieldPetID,
	)
}

// HasPet reports whether the joined pet row was found.
func (c Consultation) HasPet() bool {
	return c.PetRefID.Valid
}

// DefaultOrder lists the most recent consultations first, with id breaking ties.
func DefaultOrder() gDto.QueryParams {
	return gDto.QueryParams{
		Sorts: []gDto.Sort{
			{Field: FieldDate, Table: TableName, Dir: gDto.SortDirDesc},
			{Field: FieldTime, Table: TableName, Dir: gDto.SortDirDesc},
			{Field: FieldID, Table: TableName, Dir: gDto.SortDirDesc},
		},
	}
}

// SearchFilter matches consultations whose veterinarian, pet name or pet owner contains term,
// ignoring case. Consultations without a pet never match. A blank term yields false.
func SearchFilter(term string) (gDto.FilterGroup, bool) {
	normalized, ok := search.Normalize(term)
	if !ok {
		return gDto.FilterGroup{}, false
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			search.AnyColumn(normalized,
				search.Column{Table: TableName, Field: FieldVeterinarianName},
				search.Column{Table: petModel.TableName, Field: petModel.FieldName},
				search.Column{Table: petModel.TableName, Field: petModel.FieldOwnerName},
			),
			gDto.Filter{
				Field:    petModel.FieldID,
				Table:    petModel.TableName,
				Operator: gDto.FilterIsNotNull,
			},
		},
	}, true
}

// FilterByPet selects every consultation owned by petID.
func FilterByPet(petID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    FieldPetID,
				Value:    petID,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}
