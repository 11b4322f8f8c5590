package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"entnt-rental-backend/internal/domain"
	"entnt-rental-backend/internal/security"
	"entnt-rental-backend/internal/storage"
	"entnt-rental-backend/internal/store"
)

// Handler bundles the two stores and token manager behind the REST surface.
type Handler struct {
	sessions *store.SessionStore
	data     *store.DataStore
	tokens   security.TokenManager
	kv       storage.KeyValueStore
}

func NewHandler(sessions *store.SessionStore, data *store.DataStore, tokens security.TokenManager, kv storage.KeyValueStore) *Handler {
	return &Handler{sessions: sessions, data: data, tokens: tokens, kv: kv}
}

// NewRouter wires every route. Role gating mirrors the navigation rules:
// operational sections for Admin/Staff, catalog and my-rentals for
// Customers, notifications and navigation for anyone signed in.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	auth := api.NewRoute().Subrouter()
	auth.Use(authMiddleware(h.tokens))
	auth.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	auth.HandleFunc("/navigation", h.Navigation).Methods(http.MethodGet)
	auth.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id}", h.DeleteNotification).Methods(http.MethodDelete)

	staff := auth.NewRoute().Subrouter()
	staff.Use(requireRoles(domain.RoleAdmin, domain.RoleStaff))
	staff.HandleFunc("/equipment", h.ListEquipment).Methods(http.MethodGet)
	staff.HandleFunc("/equipment", h.AddEquipment).Methods(http.MethodPost)
	staff.HandleFunc("/equipment/{id}", h.UpdateEquipment).Methods(http.MethodPut)
	staff.HandleFunc("/equipment/{id}", h.DeleteEquipment).Methods(http.MethodDelete)
	staff.HandleFunc("/rentals", h.ListRentals).Methods(http.MethodGet)
	staff.HandleFunc("/rentals", h.AddRental).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{id}", h.UpdateRental).Methods(http.MethodPut)
	staff.HandleFunc("/rentals/{id}", h.DeleteRental).Methods(http.MethodDelete)
	staff.HandleFunc("/maintenance", h.ListMaintenance).Methods(http.MethodGet)
	staff.HandleFunc("/maintenance", h.AddMaintenance).Methods(http.MethodPost)
	staff.HandleFunc("/maintenance/{id}", h.UpdateMaintenance).Methods(http.MethodPut)
	staff.HandleFunc("/maintenance/{id}", h.DeleteMaintenance).Methods(http.MethodDelete)
	staff.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	staff.HandleFunc("/dashboard/kpis", h.DashboardKPIs).Methods(http.MethodGet)
	staff.HandleFunc("/calendar/{date}", h.Calendar).Methods(http.MethodGet)

	customer := auth.NewRoute().Subrouter()
	customer.Use(requireRoles(domain.RoleCustomer))
	customer.HandleFunc("/catalog", h.Catalog).Methods(http.MethodGet)
	customer.HandleFunc("/catalog/{id}/book", h.BookEquipment).Methods(http.MethodPost)
	customer.HandleFunc("/my-rentals", h.MyRentals).Methods(http.MethodGet)
	customer.HandleFunc("/my-rentals/{id}/return", h.ReturnRental).Methods(http.MethodPost)

	return r
}
