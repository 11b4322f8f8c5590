package views

import "entnt-rental-backend/internal/domain"

// Section is one navigable area of the application.
type Section string

const (
	SectionDashboard   Section = "dashboard"
	SectionEquipment   Section = "equipment"
	SectionMaintenance Section = "maintenance"
	SectionRentals     Section = "rentals"
	SectionCalendar    Section = "calendar"
	SectionMyRentals   Section = "my-rentals"
	SectionCatalog     Section = "catalog"
)

// SectionsFor returns the ordered list of sections a role may navigate to.
// Admin and Staff see the operational sections; Customers see the catalog
// and their own rentals; anything else sees nothing.
func SectionsFor(role domain.Role) []Section {
	switch role {
	case domain.RoleAdmin, domain.RoleStaff:
		return []Section{
			SectionDashboard,
			SectionEquipment,
			SectionMaintenance,
			SectionRentals,
			SectionCalendar,
		}
	case domain.RoleCustomer:
		return []Section{
			SectionMyRentals,
			SectionCatalog,
		}
	default:
		return nil
	}
}
