package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"entnt-rental-backend/internal/domain"
	"entnt-rental-backend/internal/logger"
	"entnt-rental-backend/internal/metrics"
	"entnt-rental-backend/internal/storage"
)

var (
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrEquipmentUnavailable = errors.New("equipment is not available")
	ErrRentalNotFound       = errors.New("rental not found")
)

// DataStore holds the full AppState in memory and writes the whole document
// back to storage after every mutation. Writes are fire-and-forget: a failed
// persist is logged and counted, the in-memory state is not rolled back, so
// memory and storage may diverge until the next successful write.
type DataStore struct {
	mu    sync.RWMutex
	kv    storage.KeyValueStore
	state domain.AppState
}

// NewDataStore loads the persisted state if it exists and parses, and seeds
// the store otherwise. Persisted state is used verbatim; there is no schema
// migration or validation step.
func NewDataStore(ctx context.Context, kv storage.KeyValueStore) *DataStore {
	s := &DataStore{kv: kv}

	data, err := kv.Get(ctx, storage.KeyAppData)
	if err == nil {
		var state domain.AppState
		if jsonErr := json.Unmarshal(data, &state); jsonErr == nil {
			s.state = state
			return s
		} else {
			logger.Error("Persisted app data is corrupt, falling back to seed data", "error", jsonErr)
		}
	} else if err != storage.ErrNotFound {
		logger.Error("Failed to read persisted app data, falling back to seed data", "error", err)
	}

	s.state = domain.SeedState()
	s.persistLocked(ctx)
	return s
}

// Snapshot returns a deep copy of the current state. Derived views are
// computed by the caller over this copy.
func (s *DataStore) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// persistLocked serializes the full state and writes it out. Callers must
// hold the write lock (or be the only referent, during construction).
func (s *DataStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		logger.Error("Failed to serialize app data", "error", err)
		metrics.PersistFailures.Inc()
		return
	}
	if err := s.kv.Set(ctx, storage.KeyAppData, data); err != nil {
		logger.Error("Failed to persist app data", "error", err)
		metrics.PersistFailures.Inc()
	}
}

// mutate runs fn under the write lock and persists afterwards.
func (s *DataStore) mutate(ctx context.Context, entity, verb string, fn func(*domain.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.persistLocked(ctx)
	metrics.Mutations.WithLabelValues(entity, verb).Inc()
}

// Adds append in order. There is no dedup and no id uniqueness check; a
// colliding id silently creates an ambiguous lookup later.

func (s *DataStore) AddUsers(ctx context.Context, users []domain.User) {
	s.mutate(ctx, "user", "add", func(st *domain.AppState) {
		st.Users = append(st.Users, users...)
	})
}

func (s *DataStore) AddEquipment(ctx context.Context, equipment []domain.Equipment) {
	s.mutate(ctx, "equipment", "add", func(st *domain.AppState) {
		st.Equipment = append(st.Equipment, equipment...)
	})
}

func (s *DataStore) AddRentals(ctx context.Context, rentals []domain.Rental) {
	s.mutate(ctx, "rental", "add", func(st *domain.AppState) {
		st.Rentals = append(st.Rentals, rentals...)
	})
}

func (s *DataStore) AddMaintenance(ctx context.Context, records []domain.Maintenance) {
	s.mutate(ctx, "maintenance", "add", func(st *domain.AppState) {
		st.Maintenance = append(st.Maintenance, records...)
	})
}

func (s *DataStore) AddNotifications(ctx context.Context, notes []domain.Notification) {
	s.mutate(ctx, "notification", "add", func(st *domain.AppState) {
		st.Notifications = append(st.Notifications, notes...)
	})
}

// Updates replace the record whose id matches and are silent no-ops when
// nothing matches.

func (s *DataStore) UpdateEquipment(ctx context.Context, updated domain.Equipment) {
	s.mutate(ctx, "equipment", "update", func(st *domain.AppState) {
		for i := range st.Equipment {
			if st.Equipment[i].ID == updated.ID {
				st.Equipment[i] = updated
			}
		}
	})
}

func (s *DataStore) UpdateRental(ctx context.Context, updated domain.Rental) {
	s.mutate(ctx, "rental", "update", func(st *domain.AppState) {
		for i := range st.Rentals {
			if st.Rentals[i].ID == updated.ID {
				st.Rentals[i] = updated
			}
		}
	})
}

func (s *DataStore) UpdateMaintenance(ctx context.Context, updated domain.Maintenance) {
	s.mutate(ctx, "maintenance", "update", func(st *domain.AppState) {
		for i := range st.Maintenance {
			if st.Maintenance[i].ID == updated.ID {
				st.Maintenance[i] = updated
			}
		}
	})
}

// Deletes remove the record whose id matches and are silent no-ops when
// nothing matches. Referential integrity is not checked here; callers that
// care guard before deleting.

func (s *DataStore) DeleteEquipment(ctx context.Context, id string) {
	s.mutate(ctx, "equipment", "delete", func(st *domain.AppState) {
		st.Equipment = deleteByID(st.Equipment, id, func(e domain.Equipment) string { return e.ID })
	})
}

func (s *DataStore) DeleteRental(ctx context.Context, id string) {
	s.mutate(ctx, "rental", "delete", func(st *domain.AppState) {
		st.Rentals = deleteByID(st.Rentals, id, func(r domain.Rental) string { return r.ID })
	})
}

func (s *DataStore) DeleteMaintenance(ctx context.Context, id string) {
	s.mutate(ctx, "maintenance", "delete", func(st *domain.AppState) {
		st.Maintenance = deleteByID(st.Maintenance, id, func(m domain.Maintenance) string { return m.ID })
	})
}

func (s *DataStore) DeleteNotification(ctx context.Context, id string) {
	s.mutate(ctx, "notification", "delete", func(st *domain.AppState) {
		st.Notifications = deleteByID(st.Notifications, id, func(n domain.Notification) string { return n.ID })
	})
}

func deleteByID[T any](records []T, id string, idOf func(T) string) []T {
	out := records[:0]
	for _, rec := range records {
		if idOf(rec) != id {
			out = append(out, rec)
		}
	}
	return out
}

// BookEquipment reserves an available equipment record for a customer:
// the rental append and the status flip happen under one lock and one
// persist, so a reservation can never exist without its status change.
func (s *DataStore) BookEquipment(ctx context.Context, equipmentID, customerID, startDate, endDate string) (domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *domain.Equipment
	for i := range s.state.Equipment {
		if s.state.Equipment[i].ID == equipmentID {
			target = &s.state.Equipment[i]
			break
		}
	}
	if target == nil {
		return domain.Rental{}, ErrEquipmentNotFound
	}
	if target.Status != domain.EquipmentStatusAvailable {
		return domain.Rental{}, ErrEquipmentUnavailable
	}

	rental := domain.Rental{
		ID:          uuid.NewString(),
		EquipmentID: equipmentID,
		CustomerID:  customerID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      domain.RentalStatusReserved,
		RentalPrice: target.PricePerDay,
	}
	s.state.Rentals = append(s.state.Rentals, rental)
	target.Status = domain.EquipmentStatusRented

	s.persistLocked(ctx)
	metrics.Mutations.WithLabelValues("rental", "book").Inc()
	return rental, nil
}

// ReturnEquipment marks a rental returned and frees its equipment in one
// step. A dangling equipment reference only skips the status flip.
func (s *DataStore) ReturnEquipment(ctx context.Context, rentalID string) (domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rental *domain.Rental
	for i := range s.state.Rentals {
		if s.state.Rentals[i].ID == rentalID {
			rental = &s.state.Rentals[i]
			break
		}
	}
	if rental == nil {
		return domain.Rental{}, ErrRentalNotFound
	}

	rental.Status = domain.RentalStatusReturned
	for i := range s.state.Equipment {
		if s.state.Equipment[i].ID == rental.EquipmentID {
			s.state.Equipment[i].Status = domain.EquipmentStatusAvailable
		}
	}

	s.persistLocked(ctx)
	metrics.Mutations.WithLabelValues("rental", "return").Inc()
	return *rental, nil
}

// EnsureCustomer returns the user with the given email, creating a Customer
// account with a random password when no user matches. Email comparison is
// case-insensitive, mirroring the staff rental form.
func (s *DataStore) EnsureCustomer(ctx context.Context, email string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.state.Users {
		if strings.EqualFold(user.Email, email) {
			return user
		}
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: uuid.NewString(),
		Role:     domain.RoleCustomer,
	}
	s.state.Users = append(s.state.Users, user)
	s.persistLocked(ctx)
	metrics.Mutations.WithLabelValues("user", "add").Inc()
	return user
}
