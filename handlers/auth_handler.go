// handlers/auth_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

// dummyPasswordHash is a valid cost-12 bcrypt digest of a throwaway string.
// Logins for unknown emails are compared against it so both failure paths
// pay a full bcrypt verification.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Login checks operator credentials against the authusers collection and
// issues a Bearer token. Unknown emails still pay a bcrypt comparison so the
// response time does not reveal which part failed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.ParseJSON(r, &creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	user, err := h.store.AuthUsers().GetByEmail(ctx, creds.Email)
	if err == store.ErrNotFound {
		_ = utils.CheckPasswordHash(creds.Password, dummyPasswordHash)
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.log.Errorw("login lookup failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !utils.CheckPasswordHash(creds.Password, user.PasswordHash) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		h.log.Errorw("jwt generation failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": map[string]string{
			"id":     user.ID.Hex(),
			"name":   user.Name,
			"email":  user.Email,
			"role":   user.Role,
			"avatar": user.Avatar,
		},
	})
}
