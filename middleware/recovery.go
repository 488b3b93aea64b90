// middleware/recovery.go
package middleware

import (
	"net/http"

	"github.com/Samirun-Shuvo/inventory-ewmgl/logger"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

// Recovery turns panics into 500 responses.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Log.Errorw("panic recovered", "error", err, "path", r.URL.Path)
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
