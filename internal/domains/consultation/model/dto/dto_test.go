package dto_test

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"agendavet/internal/domains/consultation/model"
	"agendavet/internal/domains/consultation/model/dto"
	"agendavet/shared/failure"
	"agendavet/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateConsultationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid",
			body: `{"pet_id":1,"veterinarian_name":"Dr. Carla","date":"2025-03-14","time":"09:30","reason":"Vaccine","status":"Scheduled"}`,
		},
		{
			name: "status is optional",
			body: `{"pet_id":1,"veterinarian_name":"Dr. Carla","date":"2025-03-14","time":"09:30:15","reason":"Vaccine"}`,
		},
		{
			name:    "missing pet",
			body:    `{"veterinarian_name":"Dr. Carla","date":"2025-03-14","time":"09:30","reason":"Vaccine"}`,
			wantErr: "pet_id is required",
		},
		{
			name:    "invalid date",
			body:    `{"pet_id":1,"veterinarian_name":"Dr. Carla","date":"2025-02-30","time":"09:30","reason":"Vaccine"}`,
			wantErr: "date must match the format 2006-01-02",
		},
		{
			name:    "invalid time",
			body:    `{"pet_id":1,"veterinarian_name":"Dr. Carla","date":"2025-03-14","time":"25:00","reason":"Vaccine"}`,
			wantErr: "time must be a time of day",
		},
		{
			name:    "blank reason",
			body:    `{"pet_id":1,"veterinarian_name":"Dr. Carla","date":"2025-03-14","time":"09:30","reason":" "}`,
			wantErr: "reason must not be blank",
		},
		{
			name:    "pet id of the wrong kind",
			body:    `{"pet_id":"one","veterinarian_name":"Dr. Carla","date":"2025-03-14","time":"09:30","reason":"Vaccine"}`,
			wantErr: "pet_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateConsultationRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, failure.Is(err, failure.KindValidation))
		})
	}
}

func TestCreateConsultationRequest_ToModel(t *testing.T) {
	t.Run("defaults status to pending", func(t *testing.T) {
		req := dto.CreateConsultationRequest{
			PetID:            3,
			VeterinarianName: "Dr. Carla",
			Date:             "2025-03-14",
			Time:             "09:30",
			Reason:           "Vaccine",
		}

		mod, err := req.ToModel()

		require.NoError(t, err)
		assert.Equal(t, model.Consultation{
			PetID:            3,
			VeterinarianName: "Dr. Carla",
			Date:             time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
			Time:             "09:30:00",
			Reason:           "Vaccine",
			Status:           model.StatusPending,
		}, mod)
	})

	t.Run("keeps the given status", func(t *testing.T) {
		req := dto.CreateConsultationRequest{PetID: 3, Date: "2025-03-14", Time: "09:30:45", Status: model.StatusScheduled}

		mod, err := req.ToModel()

		require.NoError(t, err)
		assert.Equal(t, model.StatusScheduled, mod.Status)
		assert.Equal(t, "09:30:45", mod.Time)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		req := dto.CreateConsultationRequest{PetID: 3, Date: "14/03/2025", Time: "09:30"}

		_, err := req.ToModel()

		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}

func TestConsultationResponse_FromModel(t *testing.T) {
	base := model.Consultation{
		ID:               8,
		PetID:            3,
		VeterinarianName: "Dr. Carla",
		Date:             time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		Time:             "0000-01-01T09:30:00.000000Z",
		Reason:           "Vaccine",
		Status:           model.StatusScheduled,
	}

	t.Run("with pet", func(t *testing.T) {
		mod := base
		mod.PetRefID = sql.NullInt64{Int64: 3, Valid: true}
		mod.PetName = sql.NullString{String: "Rex", Valid: true}
		mod.PetSpecies = sql.NullString{String: "Dog", Valid: true}
		mod.PetOwnerName = sql.NullString{String: "Ana", Valid: true}

		var res dto.ConsultationResponse
		res.FromModel(mod)

		assert.Equal(t, dto.ConsultationResponse{
			ID:               8,
			PetID:            3,
			VeterinarianName: "Dr. Carla",
			Date:             "2025-03-14",
			Time:             "09:30:00",
			Reason:           "Vaccine",
			Status:           model.StatusScheduled,
			Pet:              &dto.PetSummary{ID: 3, Name: "Rex", Species: "Dog", OwnerName: "Ana"},
			PetLabel:         "Rex",
		}, res)
	})

	t.Run("orphaned consultation gets the fallback label", func(t *testing.T) {
		var res dto.ConsultationResponse
		res.FromModel(base)

		assert.Nil(t, res.Pet)
		assert.Equal(t, dto.UnknownPetLabel, res.PetLabel)
	})
}

func TestFromModels(t *testing.T) {
	assert.Empty(t, dto.FromModels(nil))
	assert.Len(t, dto.FromModels([]model.Consultation{{ID: 1}, {ID: 2}}), 2)
}
