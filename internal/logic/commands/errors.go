// File: errors.go
// Title: Command Error Type
// Description: Structured error for execution-time domain failures:
//              well-formed input whose domain checks failed.

package commands

// CommandError reports an execution-time domain failure such as a missing
// entity, a duplicate entity, or an invalid state transition. The message
// is stable and entity-specific.
type CommandError struct {
	Message string
}

// NewCommandError returns a command error with the given message.
func NewCommandError(message string) *CommandError {
	return &CommandError{Message: message}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}
