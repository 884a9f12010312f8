// File: errors.go
// Title: Parse Error Type
// Description: Structured error for malformed or ambiguous command input.
//              Parse errors carry the usage string of the command being
//              parsed so callers can show correct syntax without
//              re-deriving it.

package parser

import "strings"

// Messages shared across command parsers.
const (
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidCommandFormat = "Invalid command format!"
	MessageDuplicatePrefixes    = "Multiple values specified for the following single-valued field(s): "
	MessageNotEdited            = "At least one field to edit must be provided."
	MessageNoSearchCriteria     = "At least one search criterion must be provided."
)

// ParseError reports malformed or ambiguous command input. Message is the
// stable diagnostic; Usage, when set, is the full usage string of the
// command being parsed.
type ParseError struct {
	Message string
	Usage   string
}

// NewParseError returns a parse error with the given message and no usage.
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

// invalidFormat returns the canonical wrong-syntax error for a command.
func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: MessageInvalidCommandFormat, Usage: usage}
}

// withUsage attaches usage to err when err is a ParseError that does not
// carry one yet. Other errors pass through unchanged.
func withUsage(err error, usage string) error {
	if perr, ok := err.(*ParseError); ok && perr.Usage == "" {
		return &ParseError{Message: perr.Message, Usage: usage}
	}
	return err
}

// duplicatePrefixError returns the structured error for prefixes that
// occurred more than once.
func duplicatePrefixError(prefixes []Prefix) *ParseError {
	names := make([]string, len(prefixes))
	for i, p := range prefixes {
		names[i] = string(p)
	}
	return &ParseError{Message: MessageDuplicatePrefixes + strings.Join(names, " ")}
}
