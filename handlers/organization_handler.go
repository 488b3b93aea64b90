// handlers/organization_handler.go
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

type createOrganizationPayload struct {
	Name         string              `json:"name"`
	LegalName    string              `json:"legal_name"`
	Type         string              `json:"type"`
	Industry     string              `json:"industry"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Website      string              `json:"website"`
	Address      models.Address      `json:"address"`
	Description  string              `json:"description"`
	EmployeeSize string              `json:"employee_size"`
	OwnerID      *primitive.ObjectID `json:"owner_id"`
	IsVerified   bool                `json:"is_verified"`
}

// ListOrganizations returns every organization, most recently created first.
func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	orgs, err := h.store.Organizations().List(ctx)
	if err != nil {
		h.log.Errorw("organizations list failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}
	utils.RespondWithJSON(w, http.StatusOK, orgs)
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var payload createOrganizationPayload
	if err := utils.ParseJSON(r, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}

	if payload.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Organization name is required")
		return
	}

	now := time.Now().UTC()
	org := models.Organization{
		Name:         payload.Name,
		LegalName:    payload.LegalName,
		Type:         payload.Type,
		Industry:     payload.Industry,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Website:      payload.Website,
		Address:      payload.Address,
		Description:  payload.Description,
		EmployeeSize: payload.EmployeeSize,
		OwnerID:      payload.OwnerID,
		IsVerified:   payload.IsVerified,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	id, err := h.store.Organizations().Insert(ctx, org)
	if err != nil {
		h.log.Errorw("organization insert failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "create_organization", "organization", id.Hex(), map[string]any{"name": org.Name})
	h.broadcast(ws.Event{Type: ws.EventEntityCreated, Entity: "organization", EntityID: id.Hex()})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message": "Organization added successfully",
		"id":      id,
	})
}

func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid Organization ID format")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	org, err := h.store.Organizations().Get(ctx, id)
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Organization not found")
		return
	}
	if err != nil {
		h.log.Errorw("organization get failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, org)
}

func (h *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var upd store.OrganizationUpdate
	if err := utils.ParseJSON(r, &upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if upd.Name != nil && *upd.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Organization name cannot be empty")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = h.store.Organizations().Update(ctx, id, upd)
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Organization not found")
		return
	}
	if err != nil {
		h.log.Errorw("organization update failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "update_organization", "organization", id.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventEntityUpdated, Entity: "organization", EntityID: id.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Organization updated successfully"})
}

// DeleteOrganization removes the record. Employees and products that carry
// this organization's name keep it; there is no cascade.
func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = h.store.Organizations().Delete(ctx, id)
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Organization not found")
		return
	}
	if err != nil {
		h.log.Errorw("organization delete failed", "id", id.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "delete_organization", "organization", id.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventEntityDeleted, Entity: "organization", EntityID: id.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Organization deleted successfully"})
}
