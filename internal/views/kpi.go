package views

import (
	"math"
	"time"

	"entnt-rental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// KPIs are the dashboard aggregates, recomputed from a snapshot on demand
// and never persisted.
type KPIs struct {
	TotalEquipment      int `json:"totalEquipment"`
	AvailableEquipment  int `json:"availableEquipment"`
	RentedEquipment     int `json:"rentedEquipment"`
	ActiveRentals       int `json:"activeRentals"`
	OverdueRentals      int `json:"overdueRentals"`
	UpcomingMaintenance int `json:"upcomingMaintenance"`
	UtilizationPercent  int `json:"utilizationPercent"`
}

// ComputeKPIs aggregates the dashboard numbers for a reference instant.
//
// The upcoming-maintenance count includes every record dated up to seven
// days out, past dates included. That matches the shipped dashboard; the
// "next 7 days" label oversells it.
func ComputeKPIs(state domain.AppState, now time.Time) KPIs {
	var k KPIs
	k.TotalEquipment = len(state.Equipment)
	for _, eq := range state.Equipment {
		switch eq.Status {
		case domain.EquipmentStatusAvailable:
			k.AvailableEquipment++
		case domain.EquipmentStatusRented:
			k.RentedEquipment++
		}
	}

	for _, r := range state.Rentals {
		start, err1 := time.Parse(dateLayout, r.StartDate)
		end, err2 := time.Parse(dateLayout, r.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		if !start.After(now) && !end.Before(now) {
			k.ActiveRentals++
		}
		if end.Before(now) && r.Status == domain.RentalStatusRented {
			k.OverdueRentals++
		}
	}

	horizon := now.AddDate(0, 0, 7)
	for _, m := range state.Maintenance {
		date, err := time.Parse(dateLayout, m.Date)
		if err != nil {
			continue
		}
		if !date.After(horizon) {
			k.UpcomingMaintenance++
		}
	}

	if k.TotalEquipment > 0 {
		k.UtilizationPercent = int(math.Round(float64(k.RentedEquipment) / float64(k.TotalEquipment) * 100))
	}
	return k
}
