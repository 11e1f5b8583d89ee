// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad Op = "load configuration"

	// State persistence
	OpStateOpen        Op = "open state database"
	OpStateRestore     Op = "restore player state"
	OpConstraintLoad   Op = "load view constraints"
	OpConstraintCommit Op = "commit view constraint"

	// Media operations
	OpMediaOpen    Op = "open media source"
	OpMediaPrepare Op = "prepare media"
	OpMediaPlay    Op = "start playback"
	OpMediaTags    Op = "read media tags"

	// Logging
	OpLogSetup Op = "set up logging"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
