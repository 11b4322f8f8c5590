package views

import "entnt-rental-backend/internal/domain"

// Display fallbacks for dangling references. Deleting an equipment or user
// record leaves any rentals and maintenance pointing at it; lookups here
// substitute a sentinel label instead of failing.

func EquipmentName(state domain.AppState, equipmentID string) string {
	for _, eq := range state.Equipment {
		if eq.ID == equipmentID {
			return eq.Name
		}
	}
	return "Unknown Equipment"
}

func CustomerEmail(state domain.AppState, customerID string) string {
	for _, user := range state.Users {
		if user.ID == customerID {
			return user.Email
		}
	}
	return "Unknown Customer"
}
