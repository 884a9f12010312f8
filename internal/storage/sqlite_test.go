// File: sqlite_test.go
// Title: SQLite Store Tests
// Description: Round-trip tests for the snapshot persistence.

package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/tutorbase/internal/model"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "tutorbase.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := openTestStore(t)

	book, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, book.Persons())
	assert.Empty(t, book.Sessions())
	assert.Empty(t, book.AttendanceRecords())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	book := model.NewAddressBook()
	alice := book.AddPerson(model.Person{
		Name:    "Alice Pauline",
		Phone:   "94351253",
		Email:   "alice@example.com",
		Address: "123, Jurong West Ave 6",
		Memo:    "prefers evenings",
		Tags:    model.NewTagSet("algebra", "friends"),
	})
	bob := book.AddPerson(model.Person{
		Name: "Bob Choo", Phone: "87654321", Email: "bob@example.com", Address: "Blk 30",
	})
	book.DeletePerson(bob)

	slot, err := model.NewTimeslot(
		time.Date(2025, time.March, 18, 10, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	session := book.AddSession(model.Session{
		Date:     time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
		Subject:  "Mathematics",
		Timeslot: &slot,
	})
	plain := book.AddSession(model.Session{
		Date:    time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
		Subject: "Physics",
	})
	book.AddAttendanceRecord(model.AttendanceRecord{
		PersonID: alice.ID, SessionID: session.ID, Present: true, Feedback: "solved all exercises",
	})

	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)

	persons := loaded.Persons()
	require.Len(t, persons, 1)
	assert.True(t, alice.Equal(persons[0]))

	archived := loaded.ArchivedPersons()
	require.Len(t, archived, 1)
	assert.Equal(t, bob.Name, archived[0].Name)

	sessions := loaded.Sessions()
	require.Len(t, sessions, 2)
	assert.True(t, session.Equal(sessions[0]))
	assert.True(t, plain.Equal(sessions[1]))

	records := loaded.AttendanceRecords()
	require.Len(t, records, 1)
	assert.True(t, records[0].Present)
	assert.Equal(t, model.Feedback("solved all exercises"), records[0].Feedback)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	store := openTestStore(t)

	book := model.NewAddressBook()
	book.AddPerson(model.Person{Name: "Alice Pauline", Phone: "94351253", Email: "a@example.com", Address: "x"})
	require.NoError(t, store.Save(book))

	book.Clear()
	book.AddPerson(model.Person{Name: "Bob Choo", Phone: "87654321", Email: "b@example.com", Address: "y"})
	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	persons := loaded.Persons()
	require.Len(t, persons, 1)
	assert.Equal(t, model.Name("Bob Choo"), persons[0].Name)
}

func TestLoadResumesIDCounters(t *testing.T) {
	store := openTestStore(t)

	book := model.NewAddressBook()
	book.AddPerson(model.Person{Name: "Alice Pauline", Phone: "94351253", Email: "a@example.com", Address: "x"})
	book.AddPerson(model.Person{Name: "Bob Choo", Phone: "87654321", Email: "b@example.com", Address: "y"})
	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	next := loaded.AddPerson(model.Person{Name: "Carl Kurz", Phone: "95352563", Email: "c@example.com", Address: "z"})
	assert.Equal(t, 3, next.ID)
}

func TestTagCodec(t *testing.T) {
	assert.Empty(t, encodeTags(nil))
	assert.Nil(t, decodeTags(""))

	tags := model.NewTagSet("geometry", "algebra")
	assert.Equal(t, tags, decodeTags(encodeTags(tags)))
}
