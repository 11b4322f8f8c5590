package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Snapshot().Notifications)
}

// DeleteNotification dismisses one feed entry. The feed is global, so a
// dismissal is visible to every viewer.
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	h.data.DeleteNotification(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}
