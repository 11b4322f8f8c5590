package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"entnt-rental-backend/internal/domain"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func rentalIDs(rentals []domain.Rental) []string {
	ids := make([]string, 0, len(rentals))
	for _, r := range rentals {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRentalsOn_SeedDataset(t *testing.T) {
	state := domain.SeedState()

	t.Run("date inside r1 range", func(t *testing.T) {
		ids := rentalIDs(RentalsOn(state, day("2025-05-25")))
		assert.Contains(t, ids, "r1")
		assert.Contains(t, ids, "r2") // 05-10..05-27 also covers the 25th
		assert.Contains(t, ids, "r5") // starts on the 25th
		assert.NotContains(t, ids, "r3")
		assert.NotContains(t, ids, "r4")
	})

	t.Run("date outside r1 range", func(t *testing.T) {
		ids := rentalIDs(RentalsOn(state, day("2025-06-10")))
		assert.NotContains(t, ids, "r1")
		assert.Contains(t, ids, "r3") // starts that day
	})
}

func TestRentalsOn_InclusiveBounds(t *testing.T) {
	state := domain.AppState{Rentals: []domain.Rental{
		{ID: "single", StartDate: "2025-06-01", EndDate: "2025-06-01"},
		{ID: "span", StartDate: "2025-06-01", EndDate: "2025-06-03"},
	}}

	assert.ElementsMatch(t, []string{"single", "span"}, rentalIDs(RentalsOn(state, day("2025-06-01"))))
	assert.ElementsMatch(t, []string{"span"}, rentalIDs(RentalsOn(state, day("2025-06-03"))))
	assert.Empty(t, RentalsOn(state, day("2025-06-04")))
	assert.Empty(t, RentalsOn(state, day("2025-05-31")))
}

func TestRentalsForCustomer(t *testing.T) {
	state := domain.SeedState()

	assert.ElementsMatch(t, []string{"r1", "r3", "r5"}, rentalIDs(RentalsForCustomer(state, "3")))
	assert.ElementsMatch(t, []string{"r2", "r4"}, rentalIDs(RentalsForCustomer(state, "4")))
	assert.Empty(t, RentalsForCustomer(state, "nobody"))
}
