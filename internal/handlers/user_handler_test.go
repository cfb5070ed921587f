package handlers_test

import (
	"net/http"
	"testing"

	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserCreatesOnce(t *testing.T) {
	env := newTestEnv(t)

	body := dto.UpsertUserRequest{
		Email:    "a@x.com",
		Name:     "Asraful",
		PhotoURL: "https://example.com/a.png",
		Role:     "user",
	}

	var created dto.WriteResult
	resp := env.request(t, http.MethodPut, "/users", "", body, &created)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, created.Acknowledged)
	assert.NotEmpty(t, created.InsertedID)

	// Second call with the same email reports exists and changes nothing.
	var exists dto.ExistsResponse
	resp = env.request(t, http.MethodPut, "/users", "", body, &exists)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, exists.Exists)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertUserDoesNotOverwriteFields(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, http.MethodPut, "/users", "", dto.UpsertUserRequest{
		Email: "b@x.com", Name: "Original",
	}, nil)
	env.request(t, http.MethodPut, "/users", "", dto.UpsertUserRequest{
		Email: "b@x.com", Name: "Changed",
	}, nil)

	var user models.User
	require.NoError(t, env.db.Where("email = ?", "b@x.com").First(&user).Error)
	assert.Equal(t, "Original", user.Name)
}
