package model_test

import (
	"testing"

	"agendavet/internal/domains/consultation/model"

	"github.com/stretchr/testify/assert"
)

func TestConsultation_GetJoinQuery(t *testing.T) {
	assert.Equal(t, "LEFT JOIN pets ON pets.id = consultations.pet_id", model.Consultation{}.GetJoinQuery())
}

func TestSearchFilter(t *testing.T) {
	t.Run("blank term applies no filter", func(t *testing.T) {
		_, ok := model.SearchFilter("")

		assert.False(t, ok)
	})

	t.Run("matches veterinarian, pet name or owner and requires a pet", func(t *testing.T) {
		filter, ok := model.SearchFilter("Ana")

		where, args := filter.GetWhereClause()

		assert.True(t, ok)
		assert.Equal(t,
			"((LOWER(consultations.veterinarian_name) LIKE LOWER(:search_consultations_veterinarian_name) OR "+
				"LOWER(pets.name) LIKE LOWER(:search_pets_name) OR "+
				"LOWER(pets.owner_name) LIKE LOWER(:search_pets_owner_name)) AND pets.id IS NOT NULL)",
			where,
		)
		assert.Equal(t, map[string]any{
			"search_consultations_veterinarian_name": "%ana%",
			"search_pets_name":                       "%ana%",
			"search_pets_owner_name":                 "%ana%",
		}, args)
	})
}

func TestFilterByPet(t *testing.T) {
	filter := model.FilterByPet(12)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(pet_id = :pet_id)", where)
	assert.Equal(t, map[string]any{"pet_id": int64(12)}, args)
}

func TestDefaultOrder(t *testing.T) {
	assert.Equal(t,
		"ORDER BY consultations.date DESC, consultations.time DESC, consultations.id DESC",
		model.DefaultOrder().OrderClause(),
	)
}
