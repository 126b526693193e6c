package model_test

import (
	"testing"

	"agendavet/internal/domains/pet/model"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilter(t *testing.T) {
	t.Run("blank term applies no filter", func(t *testing.T) {
		filter, ok := model.SearchFilter("   ")

		assert.False(t, ok)
		assert.Empty(t, filter.Filters)
	})

	t.Run("matches name or owner", func(t *testing.T) {
		filter, ok := model.SearchFilter(" REX ")

		where, args := filter.GetWhereClause()

		assert.True(t, ok)
		assert.Equal(t, "(LOWER(pets.name) LIKE LOWER(:search_pets_name) OR LOWER(pets.owner_name) LIKE LOWER(:search_pets_owner_name))", where)
		assert.Equal(t, map[string]any{"search_pets_name": "%rex%", "search_pets_owner_name": "%rex%"}, args)
	})

	t.Run("upper and lower case terms build the same predicate", func(t *testing.T) {
		upper, _ := model.SearchFilter("REX")
		lower, _ := model.SearchFilter("rex")

		assert.Equal(t, lower, upper)
	})
}

func TestDefaultOrder(t *testing.T) {
	assert.Equal(t, "ORDER BY pets.name ASC, pets.id ASC", model.DefaultOrder().OrderClause())
}
