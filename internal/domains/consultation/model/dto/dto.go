package dto

import (
	"strings"

	"agendavet/internal/domains/consultation/model"
	"agendavet/shared/calendar"
	"agendavet/shared/failure"
)

const UnknownPetLabel = "Unknown pet"

type CreateConsultationRequest struct {
	PetID            int64  `json:"pet_id"            validate:"required,gt=0"                  example:"1"`
	VeterinarianName string `json:"veterinarian_name" validate:"required,notblank,max=100"      example:"Dr. Carla"`
	Date             string `json:"date"              validate:"required,datetime=2006-01-02"   example:"2025-03-14"`
	Time             string `json:"time"              validate:"required,timeofday"             example:"09:30"`
	Reason           string `json:"reason"            validate:"required,notblank,max=255"      example:"Annual vaccination"`
	Status           string `json:"status"            validate:"omitempty,max=50"               example:"Scheduled"`
}

// ToModel converts the request, storing a missing status as Pending.
func (c *CreateConsultationRequest) ToModel() (model.Consultation, error) {
	date, err := calendar.ParseDate(c.Date)
	if err != nil {
		return model.Consultation{}, failure.BadRequest(err)
	}

	clock, err := calendar.ParseClock(c.Time)
	if err != nil {
		return model.Consultation{}, failure.BadRequest(err)
	}

	status := strings.TrimSpace(c.Status)
	if status == "" {
		status = model.StatusPending
	}

	return model.Consultation{
		PetID:            c.PetID,
		VeterinarianName: c.VeterinarianName,
		Date:             date,
		Time:             clock,
		Reason:           c.Reason,
		Status:           status,
	}, nil
}

// UpdateConsultationRequest replaces every field of a consultation.
type UpdateConsultationRequest struct {
	CreateConsultationRequest
}

type PetSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	OwnerName string `json:"owner_name"`
}

type ConsultationResponse struct {
	ID               int64       `json:"id"`
	PetID            int64       `json:"pet_id"`
	VeterinarianName string      `json:"veterinarian_name"`
	Date             string      `json:"date"`
	Time             string      `json:"time"`
	Reason           string      `json:"reason"`
	Status           string      `json:"status"`
	Pet              *PetSummary `json:"pet"`
	PetLabel         string      `json:"pet_label"`
}

func (r *ConsultationResponse) FromModel(model model.Consultation) {
	r.ID = model.ID
	r.PetID = model.PetID
	r.VeterinarianName = model.VeterinarianName
	r.Date = calendar.FormatDate(model.Date)
	r.Time = calendar.FormatClock(model.Time)
	r.Reason = model.Reason
	r.Status = model.Status
	r.Pet = nil
	r.PetLabel = UnknownPetLabel

	if model.HasPet() {
		r.Pet = &PetSummary{
			ID:        model.PetRefID.Int64,
			Name:      model.PetName.String,
			Species:   model.PetSpecies.String,
			OwnerName: model.PetOwnerName.String,
		}
		r.PetLabel = model.PetName.String
	}
}

func FromModels(models []model.Consultation) []ConsultationResponse {
	res := make([]ConsultationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
