package handlers_test

import (
	"net/http"
	"testing"

	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCartAddListDelete(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.bearerFor(t, "c@x.com")

	var first dto.WriteResult
	resp := env.request(t, http.MethodPost, "/cart", bearer, dto.AddCartItemRequest{
		Email: "c@x.com", Name: "Pasta", Price: 11.0,
	}, &first)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var second dto.WriteResult
	env.request(t, http.MethodPost, "/cart", bearer, dto.AddCartItemRequest{
		Email: "c@x.com", Name: "Salad", Price: 7.0,
	}, &second)

	var entries []models.CartItem
	env.request(t, http.MethodGet, "/cart/c@x.com", bearer, nil, &entries)
	assert.Len(t, entries, 2)

	// Deleting one entry removes exactly that entry.
	var deleted dto.DeleteResult
	resp = env.request(t, http.MethodDelete, "/cart/"+first.InsertedID, bearer, nil, &deleted)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), deleted.DeletedCount)

	env.request(t, http.MethodGet, "/cart/c@x.com", bearer, nil, &entries)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Salad", entries[0].Name)
}

func TestCartDeleteUnknownIDReportsZero(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.bearerFor(t, "c@x.com")

	var deleted dto.DeleteResult
	resp := env.request(t, http.MethodDelete, "/cart/7f1d63c2-13f1-4f02-9df0-0d4a4f0f7a10", bearer, nil, &deleted)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(0), deleted.DeletedCount)
}

func TestCartDeleteMalformedID(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.bearerFor(t, "c@x.com")

	var errResp dto.ErrorResponse
	resp := env.request(t, http.MethodDelete, "/cart/not-a-uuid", bearer, nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, errResp.Error)
}

func TestCartListScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.bearerFor(t, "c@x.com")

	env.request(t, http.MethodPost, "/cart", bearer, dto.AddCartItemRequest{
		Email: "c@x.com", Name: "Pizza", Price: 12.0,
	}, nil)
	env.request(t, http.MethodPost, "/cart", bearer, dto.AddCartItemRequest{
		Email: "other@x.com", Name: "Burger", Price: 9.0,
	}, nil)

	var entries []models.CartItem
	env.request(t, http.MethodGet, "/cart/c@x.com", bearer, nil, &entries)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Pizza", entries[0].Name)
}
