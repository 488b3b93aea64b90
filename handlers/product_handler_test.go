package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
)

func newProductPayload() map[string]any {
	return map[string]any{
		"product_type": "Laptop",
		"brand":        "Dell",
		"model":        "Latitude 5420",
		"service_tag":  "SVC-7781",
		"processor":    "i5",
		"ram":          "16GB",
	}
}

func TestCreateProductDefaultsToAvailable(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.InsertedID)

	w = doReq(t, router, http.MethodGet, "/api/products/"+created.InsertedID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	decodeBody(t, w, &p)
	assert.Equal(t, models.ProductStatusAvailable, p.Status)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreateProductValidation(t *testing.T) {
	router, st, token := setup(t)

	payload := newProductPayload()
	delete(payload, "product_type")
	w := doReq(t, router, http.MethodPost, "/api/products", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = newProductPayload()
	payload["product_type"] = "Spaceship"
	w = doReq(t, router, http.MethodPost, "/api/products", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = newProductPayload()
	payload["status"] = models.ProductStatusAssigned
	w = doReq(t, router, http.MethodPost, "/api/products", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := st.Products().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "rejected payloads must not be persisted")
}

func TestGetProductByServiceTag(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/products/SVC-7781", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	decodeBody(t, w, &p)
	assert.Equal(t, "Dell", p.Brand)

	w = doReq(t, router, http.MethodGet, "/api/products/SVC-0000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodPut, "/api/products/SVC-7781", token, map[string]any{
		"ram":    "32GB",
		"status": models.ProductStatusInMaintenance,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/products/SVC-7781", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	decodeBody(t, w, &p)
	assert.Equal(t, "32GB", p.RAM)
	assert.Equal(t, models.ProductStatusInMaintenance, p.Status)
	assert.Equal(t, "Dell", p.Brand, "fields absent from the patch stay untouched")
	assert.Equal(t, "i5", p.Processor)
}

func TestUpdateProductRejectsAssignedStatus(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodPut, "/api/products/SVC-7781", token, map[string]any{
		"status": models.ProductStatusAssigned,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductByServiceTag(t *testing.T) {
	router, st, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodDelete, "/api/products/SVC-7781", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	count, err := st.Products().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	w = doReq(t, router, http.MethodDelete, "/api/products/SVC-7781", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
