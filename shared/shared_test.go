package shared_test

import (
	"database/sql"
	"testing"

	"agendavet/shared"
	"agendavet/shared/dto"
	"agendavet/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID         int64          `db:"id"          insert:"false"`
	Name       string         `db:"name"`
	Age        int            `db:"age"`
	Note       *string        `db:"note"`
	Count      *int           `db:"count"`
	OwnerName  sql.NullString `db:"owner_name"  table:"owners" column:"name"`
	NoDBTag    string
	IgnoredTag string `db:"-"`
}

func intPtr(v int) *int {
	return &v
}

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "populated struct",
			data: record{
				ID:         9,
				Name:       "Rex",
				Age:        4,
				Count:      intPtr(2),
				OwnerName:  sql.NullString{String: "Ana", Valid: true},
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"name":  "Rex",
				"age":   4,
				"note":  nil,
				"count": 2,
			},
		},
		{
			name: "zero values are kept for a full replace",
			data: record{},
			expected: map[string]any{
				"name":  "",
				"age":   0,
				"note":  nil,
				"count": nil,
			},
		},
		{
			name: "pointer to struct",
			data: &record{Name: "Mia", Count: intPtr(0)},
			expected: map[string]any{
				"name":  "Mia",
				"age":   0,
				"note":  nil,
				"count": 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.data))
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(123), "id", "pets")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    int64(123),
				Operator: dto.FilterOperatorEq,
				Table:    "pets",
			},
		},
	}, result)

	where, args := result.GetWhereClause()
	assert.Equal(t, "(pets.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(123)}, args)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "valid", value: "42", want: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "decimal", value: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, failure.KindValidation))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
