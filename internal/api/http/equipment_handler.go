package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"entnt-rental-backend/internal/domain"
)

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Snapshot().Equipment)
}

// AddEquipment accepts a batch; the store keeps one call shape for bulk and
// single inserts. Records without an id get one assigned.
func (h *Handler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var records []domain.Equipment
	if !decodeJSON(w, r, &records) {
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusBadRequest, "no equipment records provided")
		return
	}
	for i := range records {
		if records[i].Name == "" || records[i].Category == "" {
			writeError(w, http.StatusBadRequest, "name and category are required")
			return
		}
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
		if records[i].Status == "" {
			records[i].Status = domain.EquipmentStatusAvailable
		}
	}

	h.data.AddEquipment(r.Context(), records)
	h.notify(r, "Added new Equipment successfully")
	writeJSON(w, http.StatusCreated, records)
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	var record domain.Equipment
	if !decodeJSON(w, r, &record) {
		return
	}
	record.ID = mux.Vars(r)["id"]

	h.data.UpdateEquipment(r.Context(), record)
	h.notify(r, "Updated Equipment successfully")
	writeJSON(w, http.StatusOK, record)
}

// DeleteEquipment refuses while rentals or maintenance still reference the
// record; deleting anyway would leave dangling ids that every lookup from
// then on papers over with a sentinel label.
func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	state := h.data.Snapshot()
	for _, rental := range state.Rentals {
		if rental.EquipmentID == id {
			writeError(w, http.StatusConflict, "equipment is referenced by rental records")
			return
		}
	}
	for _, m := range state.Maintenance {
		if m.EquipmentID == id {
			writeError(w, http.StatusConflict, "equipment is referenced by maintenance records")
			return
		}
	}

	h.data.DeleteEquipment(r.Context(), id)
	h.notify(r, "Deleted Equipment successfully")
	w.WriteHeader(http.StatusNoContent)
}

// notify appends an action confirmation to the global feed.
func (h *Handler) notify(r *http.Request, message string) {
	h.data.AddNotifications(r.Context(), []domain.Notification{{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}})
}
