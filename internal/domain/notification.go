package domain

// Notification is one entry in the global action-confirmation feed.
// The feed is append-only except for explicit per-entry deletion.
type Notification struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
