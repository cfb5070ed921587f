package handlers_test

import (
	"net/http"
	"testing"

	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMenuListAndCategoryFilter(t *testing.T) {
	env := newTestEnv(t)

	items := []dto.CreateMenuItemRequest{
		{Category: "dessert", Name: "Tiramisu", Price: 6.5},
		{Category: "dessert", Name: "Cheesecake", Price: 5.0},
		{Category: "dessert", Name: "Baklava", Price: 4.5},
		{Category: "drink", Name: "Lemonade", Price: 2.5},
		{Category: "drink", Name: "Iced Tea", Price: 2.0},
	}
	for _, item := range items {
		var result dto.WriteResult
		resp := env.request(t, http.MethodPost, "/menus", "", item, &result)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, result.InsertedID)
	}

	var all []models.MenuItem
	resp := env.request(t, http.MethodGet, "/menus", "", nil, &all)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, all, 5)

	var drinks []models.MenuItem
	env.request(t, http.MethodGet, "/menus?category=drink", "", nil, &drinks)
	assert.Len(t, drinks, 2)
	for _, item := range drinks {
		assert.Equal(t, "drink", item.Category)
	}

	// Unknown category matches nothing.
	var none []models.MenuItem
	env.request(t, http.MethodGet, "/menus?category=soup", "", nil, &none)
	assert.Empty(t, none)
}
