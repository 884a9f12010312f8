// File: addressbook_test.go
// Title: Address Book Tests
// Description: Tests for id assignment, archive/restore, cascade removal
//              of attendance records, and the filtered views.

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(t *testing.T) (*AddressBook, Person, Session) {
	t.Helper()
	book := NewAddressBook()
	student := book.AddPerson(Person{Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com", Address: "Jurong West"})
	session := book.AddSession(Session{Date: date(2025, time.March, 18), Subject: "Mathematics"})
	return book, student, session
}

func TestAddPersonAssignsSequentialIDs(t *testing.T) {
	book := NewAddressBook()
	first := book.AddPerson(Person{Name: "Alice Pauline"})
	second := book.AddPerson(Person{Name: "Bob Choo"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestNewAddressBookFromDataResumesCounters(t *testing.T) {
	book := NewAddressBookFromData(
		[]Person{{ID: 3, Name: "Alice Pauline"}},
		[]Person{{ID: 7, Name: "Bob Choo"}},
		[]Session{{ID: 5, Date: date(2025, time.March, 18), Subject: "Mathematics"}},
		nil,
	)

	assert.Equal(t, 8, book.AddPerson(Person{Name: "Carl Kurz"}).ID, "person ids resume past archive too")
	assert.Equal(t, 6, book.AddSession(Session{Date: date(2025, time.April, 1), Subject: "Physics"}).ID)
}

func TestDeletePersonArchivesAndCascades(t *testing.T) {
	book, student, session := newTestBook(t)
	book.AddAttendanceRecord(AttendanceRecord{PersonID: student.ID, SessionID: session.ID})

	book.DeletePerson(student)

	assert.Empty(t, book.Persons())
	assert.Len(t, book.ArchivedPersons(), 1)
	assert.Empty(t, book.AttendanceRecords(), "attendance records cascade")

	_, found := book.PersonByID(student.ID, false)
	assert.False(t, found)
	archived, found := book.PersonByID(student.ID, true)
	require.True(t, found)
	assert.Equal(t, student.Name, archived.Name)
}

func TestRestorePerson(t *testing.T) {
	book, student, _ := newTestBook(t)
	book.DeletePerson(student)

	book.RestorePerson(student)

	assert.Len(t, book.Persons(), 1)
	assert.Empty(t, book.ArchivedPersons())
	restored, found := book.PersonByID(student.ID, false)
	require.True(t, found)
	assert.Equal(t, student.ID, restored.ID, "id survives the archive round trip")
}

func TestDeleteSessionCascades(t *testing.T) {
	book, student, session := newTestBook(t)
	other := book.AddSession(Session{Date: date(2025, time.April, 1), Subject: "Physics"})
	book.AddAttendanceRecord(AttendanceRecord{PersonID: student.ID, SessionID: session.ID})
	book.AddAttendanceRecord(AttendanceRecord{PersonID: student.ID, SessionID: other.ID})

	book.DeleteSession(session)

	assert.Len(t, book.Sessions(), 1)
	records := book.AttendanceRecords()
	require.Len(t, records, 1)
	assert.Equal(t, other.ID, records[0].SessionID, "only the deleted session's records go")
}

func TestPersonByIdentity(t *testing.T) {
	book, student, _ := newTestBook(t)

	byID, found := book.PersonByIdentity(IdentityOfID(KnownID(student.ID)), false)
	require.True(t, found)
	assert.True(t, student.Equal(byID))

	byName, found := book.PersonByIdentity(IdentityOfName(student.Name), false)
	require.True(t, found)
	assert.True(t, student.Equal(byName))

	_, found = book.PersonByIdentity(IdentityOfID(UnresolvableID()), false)
	assert.False(t, found, "unresolvable ids never match")

	_, found = book.PersonByIdentity(IdentityOfID(KnownID(99)), false)
	assert.False(t, found)
}

func TestFilteredPersons(t *testing.T) {
	book, _, _ := newTestBook(t)
	book.AddPerson(Person{Name: "Bob Choo"})

	book.UpdateFilteredPersonList(NewFilter[Person](
		&NameContainsPredicate{Keywords: []string{"bob"}}))
	filtered := book.FilteredPersons()
	require.Len(t, filtered, 1)
	assert.Equal(t, Name("Bob Choo"), filtered[0].Name)

	book.UpdateFilteredPersonList(NewFilter[Person]())
	assert.Len(t, book.FilteredPersons(), 2, "empty filter shows all")
}

func TestSetAttendanceRecordReplacesByLink(t *testing.T) {
	book, student, session := newTestBook(t)
	original := AttendanceRecord{PersonID: student.ID, SessionID: session.ID}
	book.AddAttendanceRecord(original)

	updated := original
	updated.Present = true
	updated.Feedback = "solved all exercises"
	book.SetAttendanceRecord(original, updated)

	got, found := book.AttendanceRecord(student.ID, session.ID)
	require.True(t, found)
	assert.True(t, got.Present)
	assert.Equal(t, Feedback("solved all exercises"), got.Feedback)
}

func TestClear(t *testing.T) {
	book, student, session := newTestBook(t)
	book.AddAttendanceRecord(AttendanceRecord{PersonID: student.ID, SessionID: session.ID})
	book.DeletePerson(student)

	book.Clear()

	assert.Empty(t, book.Persons())
	assert.Empty(t, book.ArchivedPersons())
	assert.Empty(t, book.Sessions())
	assert.Empty(t, book.AttendanceRecords())
	assert.Equal(t, 1, book.AddPerson(Person{Name: "Fresh Start"}).ID, "id counters reset")
}
