package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"entnt-rental-backend/internal/domain"
)

func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Snapshot().Rentals)
}

type rentalRequest struct {
	EquipmentID   string  `json:"equipmentId"`
	CustomerEmail string  `json:"customerEmail"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"`
	RentalPrice   float64 `json:"rentalPrice"`
}

// AddRental mirrors the staff rental form: an unrecognized customer email
// auto-provisions a Customer account before the rental record is created.
func (h *Handler) AddRental(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.EquipmentID == "" || req.CustomerEmail == "" || req.StartDate == "" || req.EndDate == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, "please fill all required fields")
		return
	}

	customer := h.data.EnsureCustomer(r.Context(), req.CustomerEmail)

	rental := domain.Rental{
		ID:          uuid.NewString(),
		EquipmentID: req.EquipmentID,
		CustomerID:  customer.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.RentalStatus(req.Status),
		RentalPrice: req.RentalPrice,
	}
	h.data.AddRentals(r.Context(), []domain.Rental{rental})
	h.notify(r, "Added new Rental Record successfully")
	writeJSON(w, http.StatusCreated, rental)
}

func (h *Handler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	var record domain.Rental
	if !decodeJSON(w, r, &record) {
		return
	}
	record.ID = mux.Vars(r)["id"]

	h.data.UpdateRental(r.Context(), record)
	h.notify(r, "Updated Rental Record Status successfully")
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	h.data.DeleteRental(r.Context(), mux.Vars(r)["id"])
	h.notify(r, "Deleted Rental Record successfully")
	w.WriteHeader(http.StatusNoContent)
}
