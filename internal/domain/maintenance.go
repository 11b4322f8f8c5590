package domain

type MaintenanceType string

const (
	MaintenanceTypeRoutineCheck MaintenanceType = "Routine Check"
	MaintenanceTypeRepair       MaintenanceType = "Repair"
	MaintenanceTypeCalibration  MaintenanceType = "Calibration"
	MaintenanceTypeCleaning     MaintenanceType = "Cleaning"
)

type Maintenance struct {
	ID          string          `json:"id"`
	EquipmentID string          `json:"equipmentId"`
	Date        string          `json:"date"`
	Type        MaintenanceType `json:"type"`
	Notes       string          `json:"notes"`
}
