package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCounts(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]int64
	decodeBody(t, w, &counts)
	assert.Zero(t, counts["organizations"])
	assert.Zero(t, counts["employees"])
	assert.Zero(t, counts["products"])

	doReq(t, router, http.MethodPost, "/api/organizations", token, map[string]any{"name": "Acme"})
	doReq(t, router, http.MethodPost, "/api/employees", token, newEmployeePayload())
	doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())

	payload := newProductPayload()
	payload["service_tag"] = "SVC-7782"
	doReq(t, router, http.MethodPost, "/api/products", token, payload)

	w = doReq(t, router, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	decodeBody(t, w, &counts)
	assert.EqualValues(t, 1, counts["organizations"])
	assert.EqualValues(t, 1, counts["employees"])
	assert.EqualValues(t, 2, counts["products"])
}
