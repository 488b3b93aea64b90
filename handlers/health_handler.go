package handlers

import (
	"net/http"
	"time"

	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Uptime    string    `json:"uptime"`
}

var startTime = time.Now()

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
		Uptime:    time.Since(startTime).String(),
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	code := http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		response.Status = "unhealthy"
		response.Database = "disconnected"
		code = http.StatusServiceUnavailable
	}

	utils.RespondWithJSON(w, code, response)
}
