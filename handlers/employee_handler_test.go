package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
)

func newEmployeePayload() map[string]any {
	return map[string]any{
		"name":         "Farhan Ahmed",
		"pf":           "PF-1042",
		"email":        "farhan@example.com",
		"organization": "Acme",
		"department":   "IT",
		"designation":  "Engineer",
		"status":       models.EmployeeStatusActive,
	}
}

func TestCreateEmployeeMissingFields(t *testing.T) {
	router, st, token := setup(t)

	payload := newEmployeePayload()
	delete(payload, "department")

	w := doReq(t, router, http.MethodPost, "/api/employees", token, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "All fields are required", body["message"])

	count, err := st.Employees().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateEmployeeInvalidStatus(t *testing.T) {
	router, st, token := setup(t)

	payload := newEmployeePayload()
	payload["status"] = "Retired"

	w := doReq(t, router, http.MethodPost, "/api/employees", token, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "Invalid employee status", body["message"])

	count, err := st.Employees().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetEmployeeByPF(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/employees", token, newEmployeePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/employees/PF-1042", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var emp models.Employee
	decodeBody(t, w, &emp)
	assert.Equal(t, "Farhan Ahmed", emp.Name)
	assert.Equal(t, "PF-1042", emp.PF)
}

func TestUpdateEmployeeByPFPartial(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/employees", token, newEmployeePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodPut, "/api/employees/PF-1042", token, map[string]any{
		"designation": "Senior Engineer",
		"status":      models.EmployeeStatusOnLeave,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/employees/PF-1042", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var emp models.Employee
	decodeBody(t, w, &emp)
	assert.Equal(t, "Senior Engineer", emp.Designation)
	assert.Equal(t, models.EmployeeStatusOnLeave, emp.Status)
	assert.Equal(t, "Farhan Ahmed", emp.Name, "fields absent from the patch stay untouched")
	assert.Equal(t, "IT", emp.Department)
}

func TestUpdateEmployeeInvalidStatusRejectedBeforeLookup(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodPut, "/api/employees/PF-9999", token, map[string]any{
		"status": "Vacationing",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeNotFound(t *testing.T) {
	router, _, token := setup(t)

	w := doReq(t, router, http.MethodGet, "/api/employees/PF-0000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodGet, "/api/employees/64b000000000000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodPut, "/api/employees/PF-0000", token, map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doReq(t, router, http.MethodDelete, "/api/employees/PF-0000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEmployeeByPF(t *testing.T) {
	router, st, token := setup(t)

	w := doReq(t, router, http.MethodPost, "/api/employees", token, newEmployeePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, router, http.MethodDelete, "/api/employees/PF-1042", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	count, err := st.Employees().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
