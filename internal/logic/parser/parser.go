// File: parser.go
// Title: Command Dispatch
// Description: Top-level command parser. Dispatches on the first word and
//              routes the student and session compound families through a
//              nested switch on the second word.

package parser

import (
	"strings"

	"github.com/msto63/tutorbase/internal/logic/commands"
)

// Parse turns a raw command line into an executable command object or
// fails with a ParseError describing what is wrong with the input.
func Parse(input string) (commands.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, invalidFormat(commands.HelpUsage)
	}

	word, rest := splitWord(trimmed)
	switch word {
	case "help":
		return commands.HelpCommand{}, nil
	case "exit":
		return commands.ExitCommand{}, nil
	case "clear":
		return commands.ClearCommand{}, nil
	case "student":
		return parseStudentCommand(rest)
	case "session":
		return parseSessionCommand(rest)
	default:
		return nil, NewParseError(MessageUnknownCommand)
	}
}

// parseStudentCommand routes the student family. An omitted sub-word
// yields the family's overview command.
func parseStudentCommand(args string) (commands.Command, error) {
	word, rest := splitWord(strings.TrimSpace(args))
	switch word {
	case "":
		return commands.StudentCommand{}, nil
	case "add":
		return parseAddStudent(rest)
	case "list":
		return commands.ListStudentCommand{}, nil
	case "search":
		return parseSearchStudent(rest)
	case "view":
		return parseViewStudent(rest)
	case "edit":
		return parseEditStudent(rest)
	case "delete":
		return parseDeleteStudent(rest)
	case "restore":
		return parseRestoreStudent(rest)
	case "unassign":
		return parseUnassign(rest)
	default:
		return nil, NewParseError(MessageUnknownCommand)
	}
}

// parseSessionCommand routes the session family. An omitted sub-word
// yields the family's overview command.
func parseSessionCommand(args string) (commands.Command, error) {
	word, rest := splitWord(strings.TrimSpace(args))
	switch word {
	case "":
		return commands.SessionCommand{}, nil
	case "add":
		return parseAddSession(rest)
	case "list":
		return commands.ListSessionCommand{}, nil
	case "search":
		return parseSearchSession(rest)
	case "view":
		return parseViewSession(rest)
	case "delete":
		return parseDeleteSession(rest)
	case "enrol":
		return parseEnrol(rest)
	case "unenrol":
		return parseUnenrol(rest)
	case "attendance-mark":
		return parseAttendanceMark(rest)
	case "attendance-unmark":
		return parseAttendanceUnmark(rest)
	default:
		return nil, NewParseError(MessageUnknownCommand)
	}
}

// splitWord splits off the first whitespace-separated word, returning the
// word and the remaining text.
func splitWord(s string) (word, rest string) {
	word, rest, found := strings.Cut(s, " ")
	if !found {
		return s, ""
	}
	return word, rest
}
