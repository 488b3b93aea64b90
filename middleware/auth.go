package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

type contextKey string

const (
	ContextUserID   contextKey = "userID"
	ContextUserName contextKey = "userName"
	ContextUserRole contextKey = "userRole"
)

// Auth requires a valid Bearer token and puts the operator identity on the
// request context. There are no header-based exceptions: anything routed
// through here needs a token.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		claims, err := utils.ValidateJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
		ctx = context.WithValue(ctx, ContextUserName, claims.Name)
		ctx = context.WithValue(ctx, ContextUserRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
