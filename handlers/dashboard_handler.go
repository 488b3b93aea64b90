// handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

// GetDashboardStats returns independent counts of the three primary
// collections. The counts fan out concurrently and all must complete before
// the response is written.
func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	var organizations, employees, products int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		organizations, err = h.store.Organizations().Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = h.store.Employees().Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = h.store.Products().Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Errorw("dashboard counts failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard statistics")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]int64{
		"organizations": organizations,
		"employees":     employees,
		"products":      products,
	})
}
