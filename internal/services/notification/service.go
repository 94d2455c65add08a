// Package notification surfaces operational failures to the operator.
// Every fail-soft path in the services (ticketing transport errors, missing
// configuration, rejected input) reports through a Notifier so the dashboard
// can toast it; the default implementation writes to the process log.
package notification

import "log"

// Notifier receives user-visible notices raised by the services.
type Notifier interface {
	Notify(level, message string)
}

// Notice levels.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// LogNotifier writes notices to the standard logger.
type LogNotifier struct{}

// NewLogNotifier creates the default log-backed notifier.
func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

// Notify logs the notice.
func (n *LogNotifier) Notify(level, message string) {
	log.Printf("[notify:%s] %s", level, message)
}
