// Package handlers contains the HTTP route handlers of the inventory API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Samirun-Shuvo/inventory-ewmgl/middleware"
	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
	"github.com/Samirun-Shuvo/inventory-ewmgl/ws"
)

// Handler carries the injected dependencies of every route. The store is the
// single process-wide connection surface; nothing here opens connections per
// request.
type Handler struct {
	store store.Store
	hub   *ws.Hub
	log   *zap.SugaredLogger
}

func New(st store.Store, hub *ws.Hub, log *zap.SugaredLogger) *Handler {
	return &Handler{store: st, hub: hub, log: log}
}

// audit records a mutation, best effort. Failures are logged, never
// propagated: the mutation already happened.
func (h *Handler) audit(ctx context.Context, action, entityType, entityID string, details map[string]any) {
	entry := models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Actor:      actorFromContext(ctx),
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.store.AuditLogs().Record(ctx, entry); err != nil {
		h.log.Warnw("audit record failed", "action", action, "error", err)
	}
}

func (h *Handler) broadcast(evt ws.Event) {
	if h.hub != nil {
		h.hub.Broadcast(evt)
	}
}

func actorFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(middleware.ContextUserName).(string); ok {
		return name
	}
	return ""
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}
