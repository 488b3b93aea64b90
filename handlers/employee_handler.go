// handlers/employee_handler.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
	"github.com/Samirun-Shuvo/inventory-ewmgl/ws"
)

// resolveEmployee looks up an employee by the route key: a well-formed
// ObjectID hex resolves by id, anything else falls back to the PF number.
func (h *Handler) resolveEmployee(ctx context.Context, key string) (models.Employee, error) {
	if id, err := primitive.ObjectIDFromHex(key); err == nil {
		return h.store.Employees().Get(ctx, id)
	}
	return h.store.Employees().GetByPF(ctx, key)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	employees, err := h.store.Employees().List(ctx)
	if err != nil {
		h.log.Errorw("employees list failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	utils.RespondWithJSON(w, http.StatusOK, employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var emp models.Employee
	if err := utils.ParseJSON(r, &emp); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}

	if emp.Organization == "" || emp.Department == "" || emp.Designation == "" || emp.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !models.ValidEmployeeStatus(emp.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employee status")
		return
	}
	emp.ID = primitive.NilObjectID

	ctx, cancel := requestContext(r)
	defer cancel()

	id, err := h.store.Employees().Insert(ctx, emp)
	if err != nil {
		h.log.Errorw("employee insert failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "create_employee", "employee", id.Hex(), map[string]any{"pf": emp.PF})
	h.broadcast(ws.Event{Type: ws.EventEntityCreated, Entity: "employee", EntityID: id.Hex()})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message": "Employee added successfully",
		"id":      id,
	})
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	emp, err := h.resolveEmployee(ctx, mux.Vars(r)["key"])
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		h.log.Errorw("employee get failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, emp)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var upd store.EmployeeUpdate
	if err := utils.ParseJSON(r, &upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if upd.Status != nil && !models.ValidEmployeeStatus(*upd.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employee status")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	emp, err := h.resolveEmployee(ctx, mux.Vars(r)["key"])
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		h.log.Errorw("employee resolve failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := h.store.Employees().Update(ctx, emp.ID, upd); err != nil {
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.log.Errorw("employee update failed", "id", emp.ID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "update_employee", "employee", emp.ID.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventEntityUpdated, Entity: "employee", EntityID: emp.ID.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee updated successfully"})
}

// DeleteEmployee removes the record. Ledger entries that reference this
// employee keep their snapshot; they are point-in-time copies.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	emp, err := h.resolveEmployee(ctx, mux.Vars(r)["key"])
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		h.log.Errorw("employee resolve failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := h.store.Employees().Delete(ctx, emp.ID); err != nil {
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.log.Errorw("employee delete failed", "id", emp.ID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "delete_employee", "employee", emp.ID.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventEntityDeleted, Entity: "employee", EntityID: emp.ID.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
}
