// handlers/audit_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

const defaultAuditLimit = 100

// ListAuditLogs returns the most recent audit entries, newest first.
func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultAuditLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	entries, err := h.store.AuditLogs().List(ctx, limit)
	if err != nil {
		h.log.Errorw("audit list failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if entries == nil {
		entries = []models.AuditLog{}
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}
