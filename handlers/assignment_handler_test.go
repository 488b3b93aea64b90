package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
)

// createEmployeeAndProduct seeds one employee and one Available product
// through the API and returns their ids.
func createEmployeeAndProduct(t *testing.T, router *mux.Router, token string) (employeeID, productID string) {
	t.Helper()

	w := doReq(t, router, http.MethodPost, "/api/employees", token, newEmployeePayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var emp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &emp)

	w = doReq(t, router, http.MethodPost, "/api/products", token, newProductPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var prod struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &prod)

	return emp.ID, prod.InsertedID
}

func TestAssignmentLifecycle(t *testing.T) {
	router, _, token := setup(t)
	employeeID, productID := createEmployeeAndProduct(t, router, token)

	// Assign.
	w := doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": employeeID,
		"productId":  productID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Message    string `json:"message"`
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "User assigned successfully", created.Message)
	require.NotEmpty(t, created.InsertedID)

	// Product flipped to Assigned.
	w = doReq(t, router, http.MethodGet, "/api/products/"+productID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Product
	decodeBody(t, w, &p)
	assert.Equal(t, models.ProductStatusAssigned, p.Status)

	// Ledger record carries full snapshots of both sides.
	w = doReq(t, router, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ledger []models.Assignment
	decodeBody(t, w, &ledger)
	require.Len(t, ledger, 1)
	a := ledger[0]
	assert.Equal(t, employeeID, a.EmployeeID.Hex())
	assert.Equal(t, productID, a.ProductID.Hex())
	assert.Equal(t, models.AssignmentStatusActive, a.Status)
	assert.Equal(t, "Farhan Ahmed", a.Employee.Name)
	assert.Equal(t, "PF-1042", a.Employee.PF)
	assert.Equal(t, "Dell", a.Product.Brand)
	assert.Equal(t, "SVC-7781", a.Product.ServiceTag)
	assert.Equal(t, models.ProductStatusAvailable, a.Product.Status, "snapshot captures the status before the flip")

	// Double-assign of the same product is refused and the ledger stays at one.
	w = doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": employeeID,
		"productId":  productID,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	var conflict map[string]string
	decodeBody(t, w, &conflict)
	assert.Equal(t, "Product is already assigned.", conflict["message"])

	w = doReq(t, router, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	ledger = nil
	decodeBody(t, w, &ledger)
	assert.Len(t, ledger, 1)

	// Release restores the product.
	w = doReq(t, router, http.MethodDelete, "/api/users/"+created.InsertedID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/products/"+productID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &p)
	assert.Equal(t, models.ProductStatusAvailable, p.Status)

	// Releasing twice is a 404.
	w = doReq(t, router, http.MethodDelete, "/api/users/"+created.InsertedID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAssignmentUnknownParties(t *testing.T) {
	router, _, token := setup(t)
	employeeID, productID := createEmployeeAndProduct(t, router, token)

	w := doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": "64b000000000000000000000",
		"productId":  productID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": employeeID,
		"productId":  "64b000000000000000000000",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": "nope",
		"productId":  productID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"productId": productID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssignmentUnavailableProduct(t *testing.T) {
	router, _, token := setup(t)
	employeeID, productID := createEmployeeAndProduct(t, router, token)

	w := doReq(t, router, http.MethodPut, "/api/products/"+productID, token, map[string]any{
		"status": models.ProductStatusInMaintenance,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": employeeID,
		"productId":  productID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssignmentSnapshotIsPointInTime(t *testing.T) {
	router, _, token := setup(t)
	employeeID, productID := createEmployeeAndProduct(t, router, token)

	w := doReq(t, router, http.MethodPost, "/api/users", token, map[string]string{
		"employeeId": employeeID,
		"productId":  productID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Edit the employee after the assignment.
	w = doReq(t, router, http.MethodPut, "/api/employees/"+employeeID, token, map[string]any{
		"designation": "Principal Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ledger []models.Assignment
	decodeBody(t, w, &ledger)
	require.Len(t, ledger, 1)
	assert.Equal(t, "Engineer", ledger[0].Employee.Designation, "later edits must not rewrite the snapshot")
}
