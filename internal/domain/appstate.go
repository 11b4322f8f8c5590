package domain

// AppState is the aggregate root of every persisted collection and the unit
// of persistence: the whole value is serialized to one JSON document.
type AppState struct {
	Users         []User         `json:"users"`
	Equipment     []Equipment    `json:"equipment"`
	Rentals       []Rental       `json:"rentals"`
	Maintenance   []Maintenance  `json:"maintenance"`
	Notifications []Notification `json:"notifications"`
}

// Clone returns a copy whose slices are independent of the receiver's.
// Records are value types, so copying the slices is a deep copy.
func (s AppState) Clone() AppState {
	out := AppState{
		Users:         make([]User, len(s.Users)),
		Equipment:     make([]Equipment, len(s.Equipment)),
		Rentals:       make([]Rental, len(s.Rentals)),
		Maintenance:   make([]Maintenance, len(s.Maintenance)),
		Notifications: make([]Notification, len(s.Notifications)),
	}
	copy(out.Users, s.Users)
	copy(out.Equipment, s.Equipment)
	copy(out.Rentals, s.Rentals)
	copy(out.Maintenance, s.Maintenance)
	copy(out.Notifications, s.Notifications)
	return out
}
