package reservation

// Notifier receives best-effort events after a write has committed.
type Notifier interface {
	Notify(eventType string, payload any, usernames ...string)
}
