package models

// Event types published on the user events topic.
const (
	EventUserRegistered      = "user.registered"
	EventEmailVerified       = "user.email_verified"
	EventPasswordReset       = "user.password_reset"
	EventOnboardingCompleted = "user.onboarding_completed"
)

// UserEvent is a lifecycle notification about a user.
type UserEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Type      string `json:"type"`       // Type is one of the Event* constants.
	UserID    string `json:"user_id"`    // UserID is the subject of the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the event.
}
