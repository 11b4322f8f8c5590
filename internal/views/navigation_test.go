package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"entnt-rental-backend/internal/domain"
)

func TestSectionsFor(t *testing.T) {
	operational := []Section{
		SectionDashboard,
		SectionEquipment,
		SectionMaintenance,
		SectionRentals,
		SectionCalendar,
	}

	assert.Equal(t, operational, SectionsFor(domain.RoleAdmin))
	assert.Equal(t, operational, SectionsFor(domain.RoleStaff))
	assert.Equal(t, []Section{SectionMyRentals, SectionCatalog}, SectionsFor(domain.RoleCustomer))
	assert.Nil(t, SectionsFor(domain.Role("")))
	assert.Nil(t, SectionsFor(domain.Role("Intruder")))
}
