package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notification shown inline with the board tabs.
// A new notification replaces the previous one; any key press clears it.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add replaces the current notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Clear removes the current notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification to display, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
