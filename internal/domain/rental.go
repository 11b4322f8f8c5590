package domain

type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "Reserved"
	RentalStatusRented    RentalStatus = "Rented"
	RentalStatusReturned  RentalStatus = "Returned"
	RentalStatusCancelled RentalStatus = "Cancelled"
)

// Rental is an inclusive [StartDate, EndDate] booking of one equipment
// record by one customer. Dates are YYYY-MM-DD strings. StartDate <= EndDate
// is intended but not enforced, and overlapping rentals of the same
// equipment are not rejected.
type Rental struct {
	ID          string       `json:"id"`
	EquipmentID string       `json:"equipmentId"`
	CustomerID  string       `json:"customerId"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Status      RentalStatus `json:"status"`
	RentalPrice float64      `json:"rentalPrice,omitempty"`
}
