// File: model.go
// Title: Model Interface
// Description: The collaborator contract the command engine executes
//              against. Lookups signal absence through a boolean instead of
//              an error; mutators assume the caller validated existence.

package model

// Model is the interface the command engine mutates and inspects. The
// address book is the canonical implementation; tests substitute stubs.
type Model interface {
	// Students.
	HasPerson(p Person) bool
	AddPerson(p Person) Person
	SetPerson(target, edited Person)
	DeletePerson(p Person)
	RestorePerson(p Person)
	PersonByID(id int, archived bool) (Person, bool)
	PersonByName(name Name, archived bool) (Person, bool)
	PersonByIdentity(identity Identity, archived bool) (Person, bool)
	Persons() []Person
	ArchivedPersons() []Person
	FilteredPersons() []Person
	UpdateFilteredPersonList(f Filter[Person])

	// Sessions.
	HasSession(s Session) bool
	AddSession(s Session) Session
	DeleteSession(s Session)
	SessionByID(id int) (Session, bool)
	Sessions() []Session
	FilteredSessions() []Session
	UpdateFilteredSessionList(f Filter[Session])

	// Attendance records.
	HasAttendanceRecord(r AttendanceRecord) bool
	AddAttendanceRecord(r AttendanceRecord)
	SetAttendanceRecord(target, updated AttendanceRecord)
	RemoveAttendanceRecord(r AttendanceRecord)
	AttendanceRecord(personID, sessionID int) (AttendanceRecord, bool)
	AttendanceRecords() []AttendanceRecord

	// Clear removes all data from the model.
	Clear()
}
