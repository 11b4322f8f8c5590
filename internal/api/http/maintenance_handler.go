package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"entnt-rental-backend/internal/domain"
)

func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Snapshot().Maintenance)
}

func (h *Handler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	var record domain.Maintenance
	if !decodeJSON(w, r, &record) {
		return
	}
	if record.EquipmentID == "" || record.Type == "" || record.Date == "" {
		writeError(w, http.StatusBadRequest, "please fill all required fields")
		return
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	h.data.AddMaintenance(r.Context(), []domain.Maintenance{record})
	h.notify(r, "Added new Maintenance Record successfully")
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	var record domain.Maintenance
	if !decodeJSON(w, r, &record) {
		return
	}
	record.ID = mux.Vars(r)["id"]

	h.data.UpdateMaintenance(r.Context(), record)
	h.notify(r, "Updated Maintenance Record successfully")
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	h.data.DeleteMaintenance(r.Context(), mux.Vars(r)["id"])
	h.notify(r, "Deleted Maintenance Record successfully")
	w.WriteHeader(http.StatusNoContent)
}
