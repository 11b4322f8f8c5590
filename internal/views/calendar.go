package views

import (
	"time"

	"entnt-rental-backend/internal/domain"
)

// RentalsOn returns every rental whose inclusive [StartDate, EndDate] range
// contains the given date. A rental starting and ending on that date counts.
// Rentals with unparseable dates are skipped.
func RentalsOn(state domain.AppState, date time.Time) []domain.Rental {
	day := date.Truncate(24 * time.Hour)

	var out []domain.Rental
	for _, r := range state.Rentals {
		start, err1 := time.Parse(dateLayout, r.StartDate)
		end, err2 := time.Parse(dateLayout, r.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			out = append(out, r)
		}
	}
	return out
}

// RentalsForCustomer returns the rentals belonging to one customer, in
// store order.
func RentalsForCustomer(state domain.AppState, customerID string) []domain.Rental {
	var out []domain.Rental
	for _, r := range state.Rentals {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out
}
