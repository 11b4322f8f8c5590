package http

import (
	"net/http"

	"entnt-rental-backend/internal/domain"
	"entnt-rental-backend/internal/views"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login validates the posted credentials against the session store. A miss
// is a 401 with no side effects; an earlier session survives a failed
// attempt untouched.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if !h.sessions.Login(r.Context(), req.Email, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user := h.sessions.Current()
	token, err := h.tokens.GenerateAccessToken(*user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: *user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Navigation returns the sections the caller's role may reach, in order.
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	sections := views.SectionsFor(claims.Role)
	if sections == nil {
		sections = []views.Section{}
	}
	writeJSON(w, http.StatusOK, map[string][]views.Section{"sections": sections})
}
