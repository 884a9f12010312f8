// File: student.go
// Title: Student Command Family
// Description: Commands operating on students: the family overview plus
//              add, list, search, view, edit, delete, restore, and
//              unassign.

package commands

import (
	"fmt"

	"github.com/msto63/tutorbase/internal/model"
)

// Usage strings for the student family.
const (
	StudentUsage = "student: Shows the student list." +
		"\nSubcommands: add, list, search, view, edit, delete, restore, unassign"

	AddStudentUsage = "student add: Adds a student to tutorbase." +
		"\nParameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]... [m/MEMO]" +
		"\nExample: student add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 t/weakAtAlgebra"

	ListStudentUsage = "student list: Lists all students."

	SearchStudentUsage = "student search: Lists students matching any given criterion." +
		"\nParameters: [n/KEYWORDS] [t/TAG]... [session/SESSION_ID] [attended/SESSION_ID]" +
		"\nExample: student search n/alice bob t/weakAtAlgebra session/2"

	ViewStudentUsage = "student view: Shows the student identified by a STUDENT_IDENTITY." +
		"\nParameters: STUDENT_IDENTITY" +
		"\nExample: student view 1"

	EditStudentUsage = "student edit: Edits the student identified by a STUDENT_IDENTITY. " +
		"Existing values will be overwritten by the input values." +
		"\nParameters: STUDENT_IDENTITY [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]... [m/MEMO]" +
		"\nExample: student edit 1 p/91234567 e/johndoe@example.com"

	DeleteStudentUsage = "student delete: Archives the student identified by a STUDENT_IDENTITY." +
		"\nParameters: STUDENT_IDENTITY" +
		"\nExample: student delete 1"

	RestoreStudentUsage = "student restore: Restores an archived student identified by a STUDENT_IDENTITY." +
		"\nParameters: STUDENT_IDENTITY" +
		"\nExample: student restore 1"

	UnassignUsage = "student unassign: Unassigns the student identified by a STUDENT_IDENTITY from a session." +
		"\nParameters: STUDENT_IDENTITY session/SESSION_ID" +
		"\nExample: student unassign 1 session/5"
)

// StudentCommand is the family default: it shows the student view.
type StudentCommand struct{}

// Execute implements Command.
func (c StudentCommand) Execute(m model.Model) (*Result, error) {
	return &Result{Feedback: StudentUsage, Tab: TabStudents}, nil
}

// AddStudentCommand adds a new student.
type AddStudentCommand struct {
	Person model.Person
}

// Execute implements Command.
func (c AddStudentCommand) Execute(m model.Model) (*Result, error) {
	if m.HasPerson(c.Person) {
		return nil, NewCommandError(MessageDuplicatePerson)
	}
	added := m.AddPerson(c.Person)
	return &Result{
		Feedback: fmt.Sprintf(MessageAddStudentSuccess, added),
		Tab:      TabStudents,
		EntityID: added.ID,
	}, nil
}

// ListStudentCommand resets the student view to show all students.
type ListStudentCommand struct{}

// Execute implements Command.
func (c ListStudentCommand) Execute(m model.Model) (*Result, error) {
	m.UpdateFilteredPersonList(model.NewFilter[model.Person]())
	return &Result{Feedback: MessageStudentsListed, Tab: TabStudents}, nil
}

// SearchStudentCommand installs an OR-combined predicate filter as the
// active student view.
type SearchStudentCommand struct {
	Filter model.Filter[model.Person]
}

// Execute implements Command.
func (c SearchStudentCommand) Execute(m model.Model) (*Result, error) {
	m.UpdateFilteredPersonList(c.Filter)
	return &Result{
		Feedback: fmt.Sprintf(MessageStudentsFound, len(m.FilteredPersons())),
		Tab:      TabStudents,
	}, nil
}

// ViewStudentCommand focuses one student. As an observable side effect it
// resets the active student filter to show-all.
type ViewStudentCommand struct {
	Identity model.Identity
}

// Execute implements Command.
func (c ViewStudentCommand) Execute(m model.Model) (*Result, error) {
	student, ok := m.PersonByIdentity(c.Identity, false)
	if !ok {
		return nil, NewCommandError(MessagePersonNotFound)
	}
	m.UpdateFilteredPersonList(model.NewFilter[model.Person]())
	return &Result{
		Feedback: fmt.Sprintf(MessageStudentShown, student),
		Tab:      TabStudents,
		EntityID: student.ID,
	}, nil
}

// EditStudentCommand applies a patch to the student resolved by Identity.
// Only fields present in the patch are changed; a present tag field, even
// an empty one, replaces the whole tag set.
type EditStudentCommand struct {
	Identity model.Identity
	Patch    model.PersonPatch
}

// Execute implements Command.
func (c EditStudentCommand) Execute(m model.Model) (*Result, error) {
	target, ok := m.PersonByIdentity(c.Identity, false)
	if !ok {
		return nil, NewCommandError(MessagePersonNotFound)
	}
	edited := c.Patch.Apply(target)
	if !target.IsSamePerson(edited) && m.HasPerson(edited) {
		return nil, NewCommandError(MessageDuplicatePerson)
	}
	m.SetPerson(target, edited)
	return &Result{
		Feedback: fmt.Sprintf(MessageEditStudentSuccess, edited),
		Tab:      TabStudents,
		EntityID: edited.ID,
	}, nil
}

// DeleteStudentCommand archives a student and removes the student's
// attendance records.
type DeleteStudentCommand struct {
	Identity model.Identity
}

// Execute implements Command.
func (c DeleteStudentCommand) Execute(m model.Model) (*Result, error) {
	target, ok := m.PersonByIdentity(c.Identity, false)
	if !ok {
		return nil, NewCommandError(MessagePersonNotFound)
	}
	m.DeletePerson(target)
	return &Result{
		Feedback: fmt.Sprintf(MessageDeleteStudentSuccess, target),
		Tab:      TabStudents,
	}, nil
}

// RestoreStudentCommand moves a still-archived student back to the active
// list.
type RestoreStudentCommand struct {
	Identity model.Identity
}

// Execute implements Command.
func (c RestoreStudentCommand) Execute(m model.Model) (*Result, error) {
	target, ok := m.PersonByIdentity(c.Identity, true)
	if !ok {
		return nil, NewCommandError(MessagePersonNotArchived)
	}
	m.RestorePerson(target)
	return &Result{
		Feedback: fmt.Sprintf(MessageRestoreStudentSuccess, target),
		Tab:      TabStudents,
		EntityID: target.ID,
	}, nil
}

// UnassignCommand removes the attendance record linking a student to a
// session, invoked from the student side of the surface.
type UnassignCommand struct {
	Identity  model.Identity
	SessionID model.ID
}

// Execute implements Command.
func (c UnassignCommand) Execute(m model.Model) (*Result, error) {
	student, session, record, err := resolveEnrollment(m, c.Identity, c.SessionID)
	if err != nil {
		return nil, err
	}
	m.RemoveAttendanceRecord(record)
	return &Result{
		Feedback: fmt.Sprintf(MessageUnassignSuccess, student.Name, session.ID),
		Tab:      TabStudents,
		EntityID: student.ID,
	}, nil
}

// resolveEnrollment resolves the student, the session, and the attendance
// record linking them, failing with the appropriate domain error at the
// first missing piece.
func resolveEnrollment(m model.Model, identity model.Identity, sessionID model.ID) (model.Person, model.Session, model.AttendanceRecord, error) {
	student, ok := m.PersonByIdentity(identity, false)
	if !ok {
		return model.Person{}, model.Session{}, model.AttendanceRecord{}, NewCommandError(MessagePersonNotFound)
	}
	session, ok := lookupSession(m, sessionID)
	if !ok {
		return model.Person{}, model.Session{}, model.AttendanceRecord{}, NewCommandError(MessageSessionNotFound)
	}
	record, ok := m.AttendanceRecord(student.ID, session.ID)
	if !ok {
		return model.Person{}, model.Session{}, model.AttendanceRecord{}, NewCommandError(MessageNotEnrolled)
	}
	return student, session, record, nil
}

// lookupSession resolves a session id reference; unresolvable ids never
// match.
func lookupSession(m model.Model, id model.ID) (model.Session, bool) {
	if !id.Resolvable() {
		return model.Session{}, false
	}
	return m.SessionByID(id.Value())
}
