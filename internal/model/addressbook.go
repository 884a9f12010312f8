// File: addressbook.go
// Title: In-Memory Address Book
// Description: The canonical Model implementation. Owns the active and
//              archived student lists, the session list, and the attendance
//              records, and maintains the composed filter predicates for
//              the filtered views.

package model

import "slices"

// AddressBook is the in-memory Model implementation. It exclusively owns
// the canonical collections; commands never retain references into it.
type AddressBook struct {
	persons  []Person
	archived []Person
	sessions []Session
	records  []AttendanceRecord

	nextPersonID  int
	nextSessionID int

	personFilter  func(Person) bool
	sessionFilter func(Session) bool
}

// NewAddressBook returns an empty address book with show-all filters.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		nextPersonID:  1,
		nextSessionID: 1,
	}
}

// NewAddressBookFromData returns an address book seeded with existing
// data, typically loaded from storage. ID counters resume past the highest
// seen id.
func NewAddressBookFromData(persons, archived []Person, sessions []Session, records []AttendanceRecord) *AddressBook {
	book := NewAddressBook()
	book.persons = slices.Clone(persons)
	book.archived = slices.Clone(archived)
	book.sessions = slices.Clone(sessions)
	book.records = slices.Clone(records)
	for _, p := range book.persons {
		if p.ID >= book.nextPersonID {
			book.nextPersonID = p.ID + 1
		}
	}
	for _, p := range book.archived {
		if p.ID >= book.nextPersonID {
			book.nextPersonID = p.ID + 1
		}
	}
	for _, s := range book.sessions {
		if s.ID >= book.nextSessionID {
			book.nextSessionID = s.ID + 1
		}
	}
	return book
}

// HasPerson reports whether an active student with the same identity
// exists.
func (b *AddressBook) HasPerson(p Person) bool {
	for _, existing := range b.persons {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// AddPerson stores p in the active list. A zero ID is replaced with the
// next free id. The stored person is returned.
func (b *AddressBook) AddPerson(p Person) Person {
	if p.ID == 0 {
		p.ID = b.nextPersonID
	}
	if p.ID >= b.nextPersonID {
		b.nextPersonID = p.ID + 1
	}
	b.persons = append(b.persons, p)
	return p
}

// SetPerson replaces target with edited in the active list.
func (b *AddressBook) SetPerson(target, edited Person) {
	for i, p := range b.persons {
		if p.ID == target.ID {
			b.persons[i] = edited
			return
		}
	}
}

// DeletePerson moves p from the active list to the archive and removes the
// student's attendance records.
func (b *AddressBook) DeletePerson(p Person) {
	for i, existing := range b.persons {
		if existing.ID == p.ID {
			b.persons = slices.Delete(b.persons, i, i+1)
			b.archived = append(b.archived, existing)
			break
		}
	}
	b.records = slices.DeleteFunc(b.records, func(r AttendanceRecord) bool {
		return r.PersonID == p.ID
	})
}

// RestorePerson moves a still-archived student back to the active list.
func (b *AddressBook) RestorePerson(p Person) {
	for i, existing := range b.archived {
		if existing.ID == p.ID {
			b.archived = slices.Delete(b.archived, i, i+1)
			b.persons = append(b.persons, existing)
			return
		}
	}
}

// PersonByID looks up a student by id in the active or archived list.
func (b *AddressBook) PersonByID(id int, archived bool) (Person, bool) {
	list := b.persons
	if archived {
		list = b.archived
	}
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// PersonByName looks up a student by exact name in the active or archived
// list.
func (b *AddressBook) PersonByName(name Name, archived bool) (Person, bool) {
	list := b.persons
	if archived {
		list = b.archived
	}
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Person{}, false
}

// PersonByIdentity resolves an identity against the active or archived
// list. Unresolvable numeric identities never match.
func (b *AddressBook) PersonByIdentity(identity Identity, archived bool) (Person, bool) {
	if name, ok := identity.Name(); ok {
		return b.PersonByName(name, archived)
	}
	id, _ := identity.ID()
	if !id.Resolvable() {
		return Person{}, false
	}
	return b.PersonByID(id.Value(), archived)
}

// Persons returns the active student list.
func (b *AddressBook) Persons() []Person {
	return slices.Clone(b.persons)
}

// ArchivedPersons returns the archived student list.
func (b *AddressBook) ArchivedPersons() []Person {
	return slices.Clone(b.archived)
}

// FilteredPersons returns the active students matching the current filter.
func (b *AddressBook) FilteredPersons() []Person {
	if b.personFilter == nil {
		return b.Persons()
	}
	var out []Person
	for _, p := range b.persons {
		if b.personFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateFilteredPersonList composes f against the current attendance
// records and installs it as the active student view.
func (b *AddressBook) UpdateFilteredPersonList(f Filter[Person]) {
	b.personFilter = f.Compose(b.records)
}

// HasSession reports whether a session considered the same as s exists.
func (b *AddressBook) HasSession(s Session) bool {
	for _, existing := range b.sessions {
		if existing.IsSameSession(s) {
			return true
		}
	}
	return false
}

// AddSession stores s. A zero ID is replaced with the next free id. The
// stored session is returned.
func (b *AddressBook) AddSession(s Session) Session {
	if s.ID == 0 {
		s.ID = b.nextSessionID
	}
	if s.ID >= b.nextSessionID {
		b.nextSessionID = s.ID + 1
	}
	b.sessions = append(b.sessions, s)
	return s
}

// DeleteSession removes s and cascades removal of attendance records
// referencing it.
func (b *AddressBook) DeleteSession(s Session) {
	b.sessions = slices.DeleteFunc(b.sessions, func(existing Session) bool {
		return existing.ID == s.ID
	})
	b.records = slices.DeleteFunc(b.records, func(r AttendanceRecord) bool {
		return r.SessionID == s.ID
	})
}

// SessionByID looks up a session by id.
func (b *AddressBook) SessionByID(id int) (Session, bool) {
	for _, s := range b.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// Sessions returns the session list.
func (b *AddressBook) Sessions() []Session {
	return slices.Clone(b.sessions)
}

// FilteredSessions returns the sessions matching the current filter.
func (b *AddressBook) FilteredSessions() []Session {
	if b.sessionFilter == nil {
		return b.Sessions()
	}
	var out []Session
	for _, s := range b.sessions {
		if b.sessionFilter(s) {
			out = append(out, s)
		}
	}
	return out
}

// UpdateFilteredSessionList composes f and installs it as the session view.
func (b *AddressBook) UpdateFilteredSessionList(f Filter[Session]) {
	b.sessionFilter = f.Compose(b.records)
}

// HasAttendanceRecord reports whether a record for the same (student,
// session) pair exists.
func (b *AddressBook) HasAttendanceRecord(r AttendanceRecord) bool {
	for _, existing := range b.records {
		if existing.SameLink(r) {
			return true
		}
	}
	return false
}

// AddAttendanceRecord stores r. The caller is responsible for the at most
// one record per pair invariant; see HasAttendanceRecord.
func (b *AddressBook) AddAttendanceRecord(r AttendanceRecord) {
	b.records = append(b.records, r)
}

// SetAttendanceRecord replaces the record for target's pair with updated.
func (b *AddressBook) SetAttendanceRecord(target, updated AttendanceRecord) {
	for i, existing := range b.records {
		if existing.SameLink(target) {
			b.records[i] = updated
			return
		}
	}
}

// RemoveAttendanceRecord removes the record for r's pair.
func (b *AddressBook) RemoveAttendanceRecord(r AttendanceRecord) {
	b.records = slices.DeleteFunc(b.records, func(existing AttendanceRecord) bool {
		return existing.SameLink(r)
	})
}

// AttendanceRecord looks up the record for a (student, session) pair.
func (b *AddressBook) AttendanceRecord(personID, sessionID int) (AttendanceRecord, bool) {
	for _, r := range b.records {
		if r.PersonID == personID && r.SessionID == sessionID {
			return r, true
		}
	}
	return AttendanceRecord{}, false
}

// AttendanceRecords returns all attendance records.
func (b *AddressBook) AttendanceRecords() []AttendanceRecord {
	return slices.Clone(b.records)
}

// Clear removes all data and resets the id counters and filters.
func (b *AddressBook) Clear() {
	*b = *NewAddressBook()
}
