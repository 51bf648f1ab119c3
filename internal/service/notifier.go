package service

// Notifier pushes events to a connected session client (avoids an import
// cycle with the transport layer; the ws hub implements it).
type Notifier interface {
	NotifySession(sessionID string, eventType string, payload interface{})
}

// Event types published through the notifier.
const (
	EventCoachMessage     = "coach_message"
	EventHintLevelChanged = "hint_level_changed"
	EventSessionEnded     = "session_ended"
)
