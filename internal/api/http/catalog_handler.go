package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"entnt-rental-backend/internal/domain"
	"entnt-rental-backend/internal/store"
	"entnt-rental-backend/internal/views"
)

// Catalog returns the full equipment list. The booking button only shows
// for Available records client-side; the server enforces it on booking.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Snapshot().Equipment)
}

type bookRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BookEquipment creates a reservation for the signed-in customer. The
// rental append and the equipment status flip are one atomic store
// operation; either both happen or neither does.
func (h *Handler) BookEquipment(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		writeError(w, http.StatusBadRequest, "please select both start and end dates")
		return
	}

	claims := ClaimsFrom(r.Context())
	rental, err := h.data.BookEquipment(r.Context(), mux.Vars(r)["id"], claims.UserID, req.StartDate, req.EndDate)
	switch {
	case errors.Is(err, store.ErrEquipmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, store.ErrEquipmentUnavailable):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *Handler) MyRentals(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	rentals := views.RentalsForCustomer(h.data.Snapshot(), claims.UserID)
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// ReturnRental lets a customer return their own rental; the rental status
// and the equipment status change in one step.
func (h *Handler) ReturnRental(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	claims := ClaimsFrom(r.Context())

	owned := false
	for _, rental := range h.data.Snapshot().Rentals {
		if rental.ID == id && rental.CustomerID == claims.UserID {
			owned = true
			break
		}
	}
	if !owned {
		writeError(w, http.StatusNotFound, "rental not found")
		return
	}

	rental, err := h.data.ReturnEquipment(r.Context(), id)
	if errors.Is(err, store.ErrRentalNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
