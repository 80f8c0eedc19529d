// =============================================================================
// CSV to Excel Merger - Logging
// =============================================================================

package converter

import "fmt"

// Logger is an interface for logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// ConsoleLogger writes level-prefixed lines to stdout. Debug output is
// suppressed unless Verbose is set, so a normal run only shows the merger's
// own progress lines and the summary.
type ConsoleLogger struct {
	Verbose bool
}

// NewConsoleLogger creates a ConsoleLogger.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{Verbose: verbose}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
