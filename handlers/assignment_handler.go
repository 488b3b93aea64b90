// handlers/assignment_handler.go
//
// The assignment ledger is the one workflow with cross-collection side
// effects: assigning inserts a ledger record and flips the product status in
// a single atomic store operation, releasing does the reverse. The ledger is
// the source of truth for "assigned"; product.status mirrors it.
package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
	"github.com/Samirun-Shuvo/inventory-ewmgl/ws"
)

type assignPayload struct {
	EmployeeID string `json:"employeeId"`
	ProductID  string `json:"productId"`
}

// ListAssignments returns the whole ledger, newest first.
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	assignments, err := h.store.Assignments().List(ctx)
	if err != nil {
		h.log.Errorw("assignments list failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, assignments)
}

// CreateAssignment assigns a product to an employee. The operator already
// looked both up by PF and service tag; this re-fetches them, builds the
// point-in-time snapshots server-side, and commits atomically.
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var payload assignPayload
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if payload.EmployeeID == "" || payload.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "employeeId and productId are required")
		return
	}

	employeeID, err := primitive.ObjectIDFromHex(payload.EmployeeID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employee ID format")
		return
	}
	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	employee, err := h.store.Employees().Get(ctx, employeeID)
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		h.log.Errorw("employee get failed", "id", employeeID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	product, err := h.store.Products().Get(ctx, productID)
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Errorw("product get failed", "id", productID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	now := time.Now().UTC()
	assignment := models.Assignment{
		EmployeeID: employee.ID,
		ProductID:  product.ID,
		Employee: models.EmployeeSnapshot{
			ID:           employee.ID,
			PF:           employee.PF,
			Name:         employee.Name,
			Email:        employee.Email,
			Phone:        employee.Phone,
			Department:   employee.Department,
			Designation:  employee.Designation,
			Organization: employee.Organization,
		},
		Product: models.ProductSnapshot{
			ID:           product.ID,
			ProductType:  product.ProductType,
			Brand:        product.Brand,
			Model:        product.Model,
			SerialNumber: product.SerialNumber,
			ServiceTag:   product.ServiceTag,
			Organization: product.Organization,
			Status:       product.Status,
			Processor:    product.Processor,
			RAM:          product.RAM,
			HDD:          product.HDD,
			SSD:          product.SSD,
			Generation:   product.Generation,
			DisplaySize:  product.DisplaySize,
			Type:         product.Type,
		},
		Status:     models.AssignmentStatusActive,
		AssignedAt: now,
		CreatedAt:  now,
	}

	id, err := h.store.Assignments().Assign(ctx, assignment)
	switch err {
	case nil:
	case store.ErrConflict:
		utils.RespondWithError(w, http.StatusConflict, "Product is already assigned.")
		return
	case store.ErrUnavailable:
		utils.RespondWithError(w, http.StatusConflict, "Product is not available for assignment")
		return
	case store.ErrNotFound:
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	default:
		h.log.Errorw("assign failed", "productId", productID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "assign_product", "assignment", id.Hex(), map[string]any{
		"employeeId": employee.ID.Hex(),
		"productId":  product.ID.Hex(),
	})
	h.broadcast(ws.Event{Type: ws.EventProductAssigned, Entity: "assignment", EntityID: id.Hex(), Data: map[string]string{
		"employeeId": employee.ID.Hex(),
		"productId":  product.ID.Hex(),
	}})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message":    "User assigned successfully",
		"insertedId": id,
	})
}

// DeleteAssignment removes the ledger record and releases the product back
// to Available in the same atomic step.
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = h.store.Assignments().Release(ctx, id)
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Errorw("release failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "release_product", "assignment", id.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventProductReleased, Entity: "assignment", EntityID: id.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
