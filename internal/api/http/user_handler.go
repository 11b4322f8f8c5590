package http

import (
	"net/http"

	"entnt-rental-backend/internal/domain"
)

type userView struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// ListUsers returns the user collection without passwords. Accounts are
// never deleted in-app, so there is no delete route.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.data.Snapshot().Users
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, userView{ID: u.ID, Email: u.Email, Role: u.Role})
	}
	writeJSON(w, http.StatusOK, out)
}
