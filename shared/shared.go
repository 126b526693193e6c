package shared

import (
	"reflect"
	"strconv"

	"agendavet/shared/dto"
	"agendavet/shared/failure"
)

// TransformFields converts the columns a record owns into the update map used by a full replace.
// Joined columns (tagged with table) and generated keys (tagged insert:"false") are left out.
func TransformFields(data any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := 0; index < val.NumField(); index++ {
		structField := typ.Field(index)

		fieldName := structField.Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if structField.Tag.Get("table") != "" || structField.Tag.Get("insert") == "false" {
			continue
		}

		field := val.Field(index)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				updatedFields[fieldName] = nil

				continue
			}

			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID parses a path identifier. Only positive integers are accepted.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}
