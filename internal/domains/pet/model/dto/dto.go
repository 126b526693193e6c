package dto

import (
	"agendavet/internal/domains/pet/model"
)

type CreatePetRequest struct {
	Name      string `json:"name"       validate:"required,notblank,max=100" example:"Rex"`
	Species   string `json:"species"    validate:"required,notblank,max=50"  example:"Dog"`
	Breed     string `json:"breed"      validate:"required,notblank,max=50"  example:"Labrador"`
	Age       *int   `json:"age"        validate:"required,gte=0"            example:"3"`
	OwnerName string `json:"owner_name" validate:"required,notblank,max=100" example:"Ana"`
}

func (c *CreatePetRequest) ToModel() model.Pet {
	pet := model.Pet{
		Name:      c.Name,
		Species:   c.Species,
		Breed:     c.Breed,
		OwnerName: c.OwnerName,
	}

	if c.Age != nil {
		pet.Age = *c.Age
	}

	return pet
}

// UpdatePetRequest replaces every field of a pet.
type UpdatePetRequest struct {
	CreatePetRequest
}

type PetResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	Age       int    `json:"age"`
	OwnerName string `json:"owner_name"`
}

func (r *PetResponse) FromModel(model model.Pet) {
	r.ID = model.ID
	r.Name = model.Name
	r.Species = model.Species
	r.Breed = model.Breed
	r.Age = model.Age
	r.OwnerName = model.OwnerName
}

func FromModels(models []model.Pet) []PetResponse {
	res := make([]PetResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type DeletePetResponse struct {
	ID                   int64 `json:"id"`
	DeletedConsultations int64 `json:"deleted_consultations"`
}
