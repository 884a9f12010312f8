// File: session.go
// Title: Session Command Family
// Description: Commands operating on sessions: the family overview plus
//              add, list, search, view, delete, enrol, unenrol, and the
//              attendance mark/unmark pair.

package commands

import (
	"fmt"

	"github.com/msto63/tutorbase/internal/model"
)

// Usage strings for the session family.
const (
	SessionUsage = "session: Shows the session list." +
		"\nSubcommands: add, list, search, view, delete, enrol, unenrol, attendance-mark, attendance-unmark"

	AddSessionUsage = "session add: Adds a tutoring session to tutorbase." +
		"\nParameters: d/DATE s/SUBJECT [ts/TIMESLOT]" +
		"\nExample: session add d/18 Mar 2025 s/Mathematics ts/18 Mar 2025 10:00-12:00"

	ListSessionUsage = "session list: Lists all sessions."

	SearchSessionUsage = "session search: Lists sessions matching any given criterion." +
		"\nParameters: [d/DATE] [s/KEYWORDS]" +
		"\nExample: session search d/18 Mar 2025 s/mathematics"

	ViewSessionUsage = "session view: Shows the session identified by a SESSION_ID." +
		"\nParameters: SESSION_ID" +
		"\nExample: session view 1"

	DeleteSessionUsage = "session delete: Deletes the session identified by a SESSION_ID." +
		"\nParameters: SESSION_ID" +
		"\nExample: session delete 1"

	EnrolUsage = "session enrol: Enrols a student in a session." +
		"\nParameters: STUDENT_IDENTITY session/SESSION_ID" +
		"\nExample: session enrol 1 session/5"

	UnenrolUsage = "session unenrol: Unenrols a student from a session." +
		"\nParameters: STUDENT_IDENTITY session/SESSION_ID" +
		"\nExample: session unenrol 1 session/5"

	AttendanceMarkUsage = "session attendance-mark: Marks a student as present in a session." +
		"\nParameters: STUDENT_IDENTITY session/SESSION_ID [f/FEEDBACK]" +
		"\nExample: session attendance-mark 1 session/5 f/solved all exercises"

	AttendanceUnmarkUsage = "session attendance-unmark: Marks a student as absent in a session." +
		"\nParameters: STUDENT_IDENTITY session/SESSION_ID" +
		"\nExample: session attendance-unmark 1 session/5"
)

// SessionCommand is the family default: it shows the session view.
type SessionCommand struct{}

// Execute implements Command.
func (c SessionCommand) Execute(m model.Model) (*Result, error) {
	return &Result{Feedback: SessionUsage, Tab: TabSessions}, nil
}

// AddSessionCommand adds a new session.
type AddSessionCommand struct {
	Session model.Session
}

// Execute implements Command.
func (c AddSessionCommand) Execute(m model.Model) (*Result, error) {
	if m.HasSession(c.Session) {
		return nil, NewCommandError(MessageDuplicateSession)
	}
	added := m.AddSession(c.Session)
	return &Result{
		Feedback: fmt.Sprintf(MessageAddSessionSuccess, added),
		Tab:      TabSessions,
		EntityID: added.ID,
	}, nil
}

// ListSessionCommand resets the session view to show all sessions.
type ListSessionCommand struct{}

// Execute implements Command.
func (c ListSessionCommand) Execute(m model.Model) (*Result, error) {
	m.UpdateFilteredSessionList(model.NewFilter[model.Session]())
	return &Result{Feedback: MessageSessionsListed, Tab: TabSessions}, nil
}

// SearchSessionCommand installs an OR-combined predicate filter as the
// active session view.
type SearchSessionCommand struct {
	Filter model.Filter[model.Session]
}

// Execute implements Command.
func (c SearchSessionCommand) Execute(m model.Model) (*Result, error) {
	m.UpdateFilteredSessionList(c.Filter)
	return &Result{
		Feedback: fmt.Sprintf(MessageSessionsFound, len(m.FilteredSessions())),
		Tab:      TabSessions,
	}, nil
}

// ViewSessionCommand focuses one session.
type ViewSessionCommand struct {
	SessionID model.ID
}

// Execute implements Command.
func (c ViewSessionCommand) Execute(m model.Model) (*Result, error) {
	session, ok := lookupSession(m, c.SessionID)
	if !ok {
		return nil, NewCommandError(MessageSessionNotFound)
	}
	return &Result{
		Feedback: fmt.Sprintf(MessageSessionShown, session),
		Tab:      TabSessions,
		EntityID: session.ID,
	}, nil
}

// DeleteSessionCommand removes a session and cascades removal of its
// attendance records.
type DeleteSessionCommand struct {
	SessionID model.ID
}

// Execute implements Command.
func (c DeleteSessionCommand) Execute(m model.Model) (*Result, error) {
	session, ok := lookupSession(m, c.SessionID)
	if !ok {
		return nil, NewCommandError(MessageSessionNotFound)
	}
	m.DeleteSession(session)
	return &Result{
		Feedback: fmt.Sprintf(MessageDeleteSessionSuccess, session),
		Tab:      TabSessions,
	}, nil
}

// EnrolCommand creates the attendance record linking a student to a
// session. The student starts unmarked.
type EnrolCommand struct {
	Identity  model.Identity
	SessionID model.ID
}

// Execute implements Command.
func (c EnrolCommand) Execute(m model.Model) (*Result, error) {
	student, ok := m.PersonByIdentity(c.Identity, false)
	if !ok {
		return nil, NewCommandError(MessagePersonNotFound)
	}
	session, ok := lookupSession(m, c.SessionID)
	if !ok {
		return nil, NewCommandError(MessageSessionNotFound)
	}
	record := model.AttendanceRecord{PersonID: student.ID, SessionID: session.ID}
	if m.HasAttendanceRecord(record) {
		return nil, NewCommandError(MessageAlreadyEnrolled)
	}
	m.AddAttendanceRecord(record)
	return &Result{
		Feedback: fmt.Sprintf(MessageEnrolSuccess, student.Name, session.ID),
		Tab:      TabSessions,
		EntityID: session.ID,
	}, nil
}

// UnenrolCommand removes the attendance record linking a student to a
// session.
type UnenrolCommand struct {
	Identity  model.Identity
	SessionID model.ID
}

// Execute implements Command.
func (c UnenrolCommand) Execute(m model.Model) (*Result, error) {
	student, session, record, err := resolveEnrollment(m, c.Identity, c.SessionID)
	if err != nil {
		return nil, err
	}
	m.RemoveAttendanceRecord(record)
	return &Result{
		Feedback: fmt.Sprintf(MessageUnenrolSuccess, student.Name, session.ID),
		Tab:      TabSessions,
		EntityID: session.ID,
	}, nil
}

// AttendanceMarkCommand marks a student present in a session. Mark is an
// upsert: when no record exists yet, one is created, so a walk-in can be
// recorded in a single command. Feedback, when given, replaces the
// record's feedback.
type AttendanceMarkCommand struct {
	Identity  model.Identity
	SessionID model.ID
	Feedback  model.Feedback
}

// Execute implements Command.
func (c AttendanceMarkCommand) Execute(m model.Model) (*Result, error) {
	student, ok := m.PersonByIdentity(c.Identity, false)
	if !ok {
		return nil, NewCommandError(MessagePersonNotFound)
	}
	session, ok := lookupSession(m, c.SessionID)
	if !ok {
		return nil, NewCommandError(MessageSessionNotFound)
	}
	record, exists := m.AttendanceRecord(student.ID, session.ID)
	if exists {
		updated := record
		updated.Present = true
		if c.Feedback != "" {
			updated.Feedback = c.Feedback
		}
		m.SetAttendanceRecord(record, updated)
	} else {
		m.AddAttendanceRecord(model.AttendanceRecord{
			PersonID:  student.ID,
			SessionID: session.ID,
			Present:   true,
			Feedback:  c.Feedback,
		})
	}
	return &Result{
		Feedback: fmt.Sprintf(MessageMarkSuccess, student.Name, session.ID),
		Tab:      TabSessions,
		EntityID: session.ID,
	}, nil
}

// AttendanceUnmarkCommand marks a student absent in a session. Unlike
// mark, unmark requires an existing record: unmarking a never-enrolled
// student signals a typoed id rather than a no-op.
type AttendanceUnmarkCommand struct {
	Identity  model.Identity
	SessionID model.ID
}

// Execute implements Command.
func (c AttendanceUnmarkCommand) Execute(m model.Model) (*Result, error) {
	student, ok := m.PersonByIdentity(c.Identity, false)
	if !ok {
		return nil, NewCommandError(MessagePersonNotFound)
	}
	session, ok := lookupSession(m, c.SessionID)
	if !ok {
		return nil, NewCommandError(MessageSessionNotFound)
	}
	record, exists := m.AttendanceRecord(student.ID, session.ID)
	if !exists {
		return nil, NewCommandError(MessageNoAttendanceRecord)
	}
	updated := record
	updated.Present = false
	m.SetAttendanceRecord(record, updated)
	return &Result{
		Feedback: fmt.Sprintf(MessageUnmarkSuccess, student.Name, session.ID),
		Tab:      TabSessions,
		EntityID: session.ID,
	}, nil
}
