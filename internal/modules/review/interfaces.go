package review

type Notifier interface {
	Notify(eventType string, payload any, usernames ...string)
}
