package domain

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "Available"
	EquipmentStatusRented      EquipmentStatus = "Rented"
	EquipmentStatusMaintenance EquipmentStatus = "Maintenance"
	EquipmentStatusRetired     EquipmentStatus = "Retired"
)

type EquipmentCondition string

const (
	EquipmentConditionNew  EquipmentCondition = "New"
	EquipmentConditionGood EquipmentCondition = "Good"
	EquipmentConditionFair EquipmentCondition = "Fair"
	EquipmentConditionPoor EquipmentCondition = "Poor"
)

type Equipment struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Condition   EquipmentCondition `json:"condition"`
	Status      EquipmentStatus    `json:"status"`
	PricePerDay float64            `json:"pricePerDay,omitempty"`
}
