package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
)

func TestCreateOrganizationRoundtrip(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/organizations", token, map[string]any{
		"name":     "Acme",
		"industry": "Publishing",
		"address":  map[string]string{"city": "Dhaka", "country": "Bangladesh"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)

	w = doReq(t, router, http.MethodGet, "/api/organizations/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var org models.Organization
	decodeBody(t, w, &org)
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, "active", org.Status)
	assert.Equal(t, "Dhaka", org.Address.City)
	assert.False(t, org.CreatedAt.After(org.UpdatedAt), "created_at must be <= updated_at")
}

func TestCreateOrganizationMissingName(t *testing.T) {
	router, st, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/organizations", token, map[string]any{
		"industry": "Publishing",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	count, err := st.Organizations().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "nothing may be persisted on validation failure")
}

func TestListOrganizationsNewestFirst(t *testing.T) {
	router, st, token := setup(t)
	ctx := context.Background()

	older := time.Now().UTC().Add(-time.Hour)
	newer := time.Now().UTC()
	_, err := st.Organizations().Insert(ctx, models.Organization{Name: "Older", Status: "active", CreatedAt: older, UpdatedAt: older})
	require.NoError(t, err)
	_, err = st.Organizations().Insert(ctx, models.Organization{Name: "Newer", Status: "active", CreatedAt: newer, UpdatedAt: newer})
	require.NoError(t, err)

	w := doReq(t, router, http.MethodGet, "/api/organizations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orgs []models.Organization
	decodeBody(t, w, &orgs)
	require.Len(t, orgs, 2)
	assert.Equal(t, "Newer", orgs[0].Name)
	assert.Equal(t, "Older", orgs[1].Name)
}

func TestUpdateOrganizationMergesAndRefreshesTimestamp(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/organizations", token, map[string]any{
		"name":        "Acme",
		"description": "original description",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = doReq(t, router, http.MethodPut, "/api/organizations/"+created.ID, token, map[string]any{
		"industry":    "Media",
		"is_verified": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/organizations/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var org models.Organization
	decodeBody(t, w, &org)
	assert.Equal(t, "Acme", org.Name, "fields absent from the patch stay untouched")
	assert.Equal(t, "original description", org.Description)
	assert.Equal(t, "Media", org.Industry)
	assert.True(t, org.IsVerified)
	assert.False(t, org.UpdatedAt.Before(org.CreatedAt))
}

func TestOrganizationNotFoundAndBadID(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodGet, "/api/organizations/not-a-hex-id", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/organizations/64b000000000000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodPut, "/api/organizations/64b000000000000000000000", token, map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodDelete, "/api/organizations/64b000000000000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrganization(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/organizations", token, map[string]any{"name": "Doomed"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = doReq(t, router, http.MethodDelete, "/api/organizations/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/organizations/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodDelete, "/api/organizations/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
