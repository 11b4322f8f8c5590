package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"entnt-rental-backend/internal/domain"
)

func TestComputeKPIs_SeedDataset(t *testing.T) {
	now := time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)
	k := ComputeKPIs(domain.SeedState(), now)

	assert.Equal(t, 10, k.TotalEquipment)
	assert.Equal(t, 6, k.AvailableEquipment)
	assert.Equal(t, 3, k.RentedEquipment)
	// r1 (05-20..06-05) and r5 (05-25..06-02) contain the 28th; r2 ended
	// on the 27th and r3/r4 are outside the window.
	assert.Equal(t, 2, k.ActiveRentals)
	// r2 is past its end date and still marked Rented.
	assert.Equal(t, 1, k.OverdueRentals)
	// m1, m2 and m3 fall at or before 06-04; m4 is beyond the horizon.
	// m1 is already past and still counts: the window has no lower bound.
	assert.Equal(t, 3, k.UpcomingMaintenance)
	assert.Equal(t, 30, k.UtilizationPercent)
}

func TestComputeKPIs_UtilizationZeroWithoutEquipment(t *testing.T) {
	k := ComputeKPIs(domain.AppState{}, time.Now())
	assert.Equal(t, 0, k.TotalEquipment)
	assert.Equal(t, 0, k.UtilizationPercent)
}

func TestComputeKPIs_UtilizationRounds(t *testing.T) {
	state := domain.AppState{Equipment: []domain.Equipment{
		{ID: "a", Status: domain.EquipmentStatusRented},
		{ID: "b", Status: domain.EquipmentStatusRented},
		{ID: "c", Status: domain.EquipmentStatusAvailable},
	}}
	k := ComputeKPIs(state, time.Now())
	assert.Equal(t, 67, k.UtilizationPercent, "round(2/3*100)")
}

func TestComputeKPIs_SkipsUnparseableDates(t *testing.T) {
	state := domain.AppState{
		Rentals:     []domain.Rental{{ID: "r", StartDate: "not-a-date", EndDate: "also-not", Status: domain.RentalStatusRented}},
		Maintenance: []domain.Maintenance{{ID: "m", Date: "garbage"}},
	}
	k := ComputeKPIs(state, time.Now())
	assert.Equal(t, 0, k.ActiveRentals)
	assert.Equal(t, 0, k.OverdueRentals)
	assert.Equal(t, 0, k.UpcomingMaintenance)
}
