package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"entnt-rental-backend/internal/domain"
	"entnt-rental-backend/internal/views"
)

func (h *Handler) DashboardKPIs(w http.ResponseWriter, r *http.Request) {
	kpis := views.ComputeKPIs(h.data.Snapshot(), time.Now().UTC())
	writeJSON(w, http.StatusOK, kpis)
}

// Calendar lists the rentals whose inclusive date range contains the
// requested day.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", mux.Vars(r)["date"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	rentals := views.RentalsOn(h.data.Snapshot(), date)
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}
