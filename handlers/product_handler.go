// handlers/product_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
	"github.com/Samirun-Shuvo/inventory-ewmgl/ws"
)

// resolveProduct looks up a product by the route key: a well-formed ObjectID
// hex resolves by id, anything else falls back to the service tag.
func (h *Handler) resolveProduct(ctx context.Context, key string) (models.Product, error) {
	if id, err := primitive.ObjectIDFromHex(key); err == nil {
		return h.store.Products().Get(ctx, id)
	}
	return h.store.Products().GetByServiceTag(ctx, key)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	products, err := h.store.Products().List(ctx)
	if err != nil {
		h.log.Errorw("products list failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := utils.ParseJSON(r, &p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}

	if p.ProductType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product type is required")
		return
	}
	if !models.ValidProductType(p.ProductType) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product type")
		return
	}
	if p.Status == "" {
		p.Status = models.ProductStatusAvailable
	}
	if !models.ValidProductStatus(p.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product status")
		return
	}
	if p.Status == models.ProductStatusAssigned {
		// Assigned is derived from the ledger, never submitted.
		utils.RespondWithError(w, http.StatusBadRequest, "Product status Assigned is set by the assignment workflow")
		return
	}

	p.ID = primitive.NilObjectID
	p.CreatedAt = time.Now().UTC()

	ctx, cancel := requestContext(r)
	defer cancel()

	id, err := h.store.Products().Insert(ctx, p)
	if err != nil {
		h.log.Errorw("product insert failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "create_product", "product", id.Hex(), map[string]any{"product_type": p.ProductType, "service_tag": p.ServiceTag})
	h.broadcast(ws.Event{Type: ws.EventEntityCreated, Entity: "product", EntityID: id.Hex()})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message":    "Product added successfully",
		"insertedId": id,
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	p, err := h.resolveProduct(ctx, mux.Vars(r)["key"])
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Errorw("product get failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// UpdateProduct merges the supplied subset of attributes. Absent fields stay
// untouched. Status changes are rejected while the product is Assigned: that
// state belongs to the ledger.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var upd store.ProductUpdate
	if err := utils.ParseJSON(r, &upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload format")
		return
	}
	if upd.ProductType != nil && !models.ValidProductType(*upd.ProductType) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product type")
		return
	}
	if upd.Status != nil {
		if !models.ValidProductStatus(*upd.Status) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid product status")
			return
		}
		if *upd.Status == models.ProductStatusAssigned {
			utils.RespondWithError(w, http.StatusBadRequest, "Product status Assigned is set by the assignment workflow")
			return
		}
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	p, err := h.resolveProduct(ctx, mux.Vars(r)["key"])
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Errorw("product resolve failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if upd.Status != nil && p.Status == models.ProductStatusAssigned {
		utils.RespondWithError(w, http.StatusConflict, "Product status is managed by its active assignment")
		return
	}

	if err := h.store.Products().Update(ctx, p.ID, upd); err != nil {
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Errorw("product update failed", "id", p.ID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "update_product", "product", p.ID.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventEntityUpdated, Entity: "product", EntityID: p.ID.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	p, err := h.resolveProduct(ctx, mux.Vars(r)["key"])
	if err == store.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Errorw("product resolve failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := h.store.Products().Delete(ctx, p.ID); err != nil {
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.Errorw("product delete failed", "id", p.ID.Hex(), "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.audit(ctx, "delete_product", "product", p.ID.Hex(), nil)
	h.broadcast(ws.Event{Type: ws.EventEntityDeleted, Entity: "product", EntityID: p.ID.Hex()})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
