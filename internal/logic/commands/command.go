// File: command.go
// Title: Command Contract and Execution Result
// Description: The Execute contract implemented by every command and the
//              Result value returned to the presentation layer.

package commands

import "github.com/msto63/tutorbase/internal/model"

// Command is a fully parsed, validated command ready for execution. Each
// Execute call is self-contained: the command retains no references into
// the model between invocations.
type Command interface {
	Execute(m model.Model) (*Result, error)
}

// Tab identifies the view the presentation layer should focus after a
// command.
type Tab int

// Navigation hints carried by results.
const (
	TabNone Tab = iota
	TabStudents
	TabSessions
)

func (t Tab) String() string {
	switch t {
	case TabStudents:
		return "students"
	case TabSessions:
		return "sessions"
	default:
		return "none"
	}
}

// Result is the outcome of a successfully executed command: the feedback
// text shown to the user plus optional view-navigation metadata. EntityID
// names the entity to focus when a Tab hint is present; zero means none.
type Result struct {
	Feedback string
	Tab      Tab
	EntityID int
	ShowHelp bool
	Exit     bool
}
