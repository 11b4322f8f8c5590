package domain

// SeedState returns the dataset used when no persisted state exists yet.
func SeedState() AppState {
	return AppState{
		Users: []User{
			{ID: "1", Email: "admin@entnt.in", Password: "admin123", Role: RoleAdmin},
			{ID: "2", Email: "staff@entnt.in", Password: "staff123", Role: RoleStaff},
			{ID: "3", Email: "customer@entnt.in", Password: "cust123", Role: RoleCustomer},
			{ID: "4", Email: "jane@example.com", Password: "password", Role: RoleCustomer},
		},
		Equipment: []Equipment{
			{ID: "eq1", Name: "Excavator (Large)", Category: "Heavy Machinery", Condition: EquipmentConditionGood, Status: EquipmentStatusAvailable, PricePerDay: 100},
			{ID: "eq2", Name: "Concrete Mixer (Portable)", Category: "Construction", Condition: EquipmentConditionGood, Status: EquipmentStatusRented, PricePerDay: 60},
			{ID: "eq3", Name: "Scaffolding Set (Small)", Category: "Building Supplies", Condition: EquipmentConditionFair, Status: EquipmentStatusAvailable, PricePerDay: 30},
			{ID: "eq4", Name: "Jackhammer (Electric)", Category: "Demolition", Condition: EquipmentConditionGood, Status: EquipmentStatusMaintenance, PricePerDay: 20},
			{ID: "eq5", Name: "Generator (5kW)", Category: "Power Tools", Condition: EquipmentConditionNew, Status: EquipmentStatusAvailable, PricePerDay: 50},
			{ID: "eq6", Name: "Forklift (Electric)", Category: "Heavy Machinery", Condition: EquipmentConditionGood, Status: EquipmentStatusRented, PricePerDay: 90},
			{ID: "eq7", Name: "Pressure Washer", Category: "Cleaning", Condition: EquipmentConditionFair, Status: EquipmentStatusAvailable, PricePerDay: 40},
			{ID: "eq8", Name: "Air Compressor", Category: "Tools", Condition: EquipmentConditionFair, Status: EquipmentStatusRented, PricePerDay: 45},
			{ID: "eq9", Name: "Welding Machine", Category: "Fabrication", Condition: EquipmentConditionGood, Status: EquipmentStatusAvailable, PricePerDay: 35},
			{ID: "eq10", Name: "Mini Digger", Category: "Heavy Machinery", Condition: EquipmentConditionNew, Status: EquipmentStatusAvailable, PricePerDay: 85},
		},
		Rentals: []Rental{
			{ID: "r1", EquipmentID: "eq2", CustomerID: "3", StartDate: "2025-05-20", EndDate: "2025-06-05", Status: RentalStatusRented, RentalPrice: 250},
			{ID: "r2", EquipmentID: "eq8", CustomerID: "4", StartDate: "2025-05-10", EndDate: "2025-05-27", Status: RentalStatusRented, RentalPrice: 80},
			{ID: "r3", EquipmentID: "eq1", CustomerID: "3", StartDate: "2025-06-10", EndDate: "2025-06-15", Status: RentalStatusReserved, RentalPrice: 400},
			{ID: "r4", EquipmentID: "eq6", CustomerID: "4", StartDate: "2025-05-01", EndDate: "2025-05-07", Status: RentalStatusReturned, RentalPrice: 300},
			{ID: "r5", EquipmentID: "eq6", CustomerID: "3", StartDate: "2025-05-25", EndDate: "2025-06-02", Status: RentalStatusRented, RentalPrice: 300},
		},
		Maintenance: []Maintenance{
			{ID: "m1", EquipmentID: "eq1", Date: "2025-05-15", Type: MaintenanceTypeRoutineCheck, Notes: "Completed annual inspection."},
			{ID: "m2", EquipmentID: "eq4", Date: "2025-06-03", Type: MaintenanceTypeRepair, Notes: "Motor overheating, scheduled for repair."},
			{ID: "m3", EquipmentID: "eq2", Date: "2025-06-01", Type: MaintenanceTypeCalibration, Notes: "Scheduled mixer calibration."},
			{ID: "m4", EquipmentID: "eq5", Date: "2025-06-20", Type: MaintenanceTypeRoutineCheck, Notes: "Next quarter's check-up."},
		},
		Notifications: []Notification{},
	}
}
