// File: sqlite.go
// Title: SQLite Persistence
// Description: Stores the full model snapshot in a SQLite database. The
//              dataset is small, so Save rewrites the snapshot in one
//              transaction rather than tracking row-level changes.

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/tutorbase/internal/model"
)

// SQLiteStore persists the model to a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates the database at path and initializes the schema.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return store, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// initSchema creates the tables.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS persons (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL,
		memo TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		archived INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY,
		date TEXT NOT NULL,
		subject TEXT NOT NULL,
		timeslot_start TEXT,
		timeslot_end TEXT
	);

	CREATE TABLE IF NOT EXISTS attendance (
		person_id INTEGER NOT NULL,
		session_id INTEGER NOT NULL,
		present INTEGER NOT NULL DEFAULT 0,
		feedback TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (person_id, session_id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save writes the full model snapshot in one transaction.
func (s *SQLiteStore) Save(m model.Model) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"persons", "sessions", "attendance"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertPersons(tx, m.Persons(), false); err != nil {
		return err
	}
	if err := insertPersons(tx, m.ArchivedPersons(), true); err != nil {
		return err
	}
	for _, session := range m.Sessions() {
		var start, end sql.NullString
		if session.Timeslot != nil {
			start = sql.NullString{String: session.Timeslot.Start.Format(time.RFC3339), Valid: true}
			end = sql.NullString{String: session.Timeslot.End.Format(time.RFC3339), Valid: true}
		}
		_, err := tx.Exec(
			`INSERT INTO sessions (id, date, subject, timeslot_start, timeslot_end) VALUES (?, ?, ?, ?, ?)`,
			session.ID, session.Date.Format(time.RFC3339), string(session.Subject), start, end,
		)
		if err != nil {
			return fmt.Errorf("inserting session %d: %w", session.ID, err)
		}
	}
	for _, record := range m.AttendanceRecords() {
		_, err := tx.Exec(
			`INSERT INTO attendance (person_id, session_id, present, feedback) VALUES (?, ?, ?, ?)`,
			record.PersonID, record.SessionID, record.Present, string(record.Feedback),
		)
		if err != nil {
			return fmt.Errorf("inserting attendance %d/%d: %w", record.PersonID, record.SessionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

func insertPersons(tx *sql.Tx, persons []model.Person, archived bool) error {
	for _, p := range persons {
		_, err := tx.Exec(
			`INSERT INTO persons (id, name, phone, email, address, memo, tags, archived) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, string(p.Name), string(p.Phone), string(p.Email), string(p.Address),
			string(p.Memo), encodeTags(p.Tags), archived,
		)
		if err != nil {
			return fmt.Errorf("inserting person %d: %w", p.ID, err)
		}
	}
	return nil
}

// Load reads the stored snapshot into a fresh address book. An empty
// database yields an empty book.
func (s *SQLiteStore) Load() (*model.AddressBook, error) {
	persons, archived, err := s.loadPersons()
	if err != nil {
		return nil, err
	}
	sessions, err := s.loadSessions()
	if err != nil {
		return nil, err
	}
	records, err := s.loadAttendance()
	if err != nil {
		return nil, err
	}
	return model.NewAddressBookFromData(persons, archived, sessions, records), nil
}

func (s *SQLiteStore) loadPersons() (active, archived []model.Person, err error) {
	rows, err := s.db.Query(
		`SELECT id, name, phone, email, address, memo, tags, archived FROM persons ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("loading persons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Person
		var name, phone, email, address, memo, tags string
		var isArchived bool
		if err := rows.Scan(&p.ID, &name, &phone, &email, &address, &memo, &tags, &isArchived); err != nil {
			return nil, nil, fmt.Errorf("scanning person: %w", err)
		}
		p.Name = model.Name(name)
		p.Phone = model.Phone(phone)
		p.Email = model.Email(email)
		p.Address = model.Address(address)
		p.Memo = model.Memo(memo)
		p.Tags = decodeTags(tags)
		if isArchived {
			archived = append(archived, p)
		} else {
			active = append(active, p)
		}
	}
	return active, archived, rows.Err()
}

func (s *SQLiteStore) loadSessions() ([]model.Session, error) {
	rows, err := s.db.Query(
		`SELECT id, date, subject, timeslot_start, timeslot_end FROM sessions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var session model.Session
		var date, subject string
		var start, end sql.NullString
		if err := rows.Scan(&session.ID, &date, &subject, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if session.Date, err = parseStoredTime(date); err != nil {
			return nil, err
		}
		session.Subject = model.Subject(subject)
		if start.Valid && end.Valid {
			slotStart, err := parseStoredTime(start.String)
			if err != nil {
				return nil, err
			}
			slotEnd, err := parseStoredTime(end.String)
			if err != nil {
				return nil, err
			}
			session.Timeslot = &model.Timeslot{Start: slotStart, End: slotEnd}
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) loadAttendance() ([]model.AttendanceRecord, error) {
	rows, err := s.db.Query(
		`SELECT person_id, session_id, present, feedback FROM attendance ORDER BY person_id, session_id`)
	if err != nil {
		return nil, fmt.Errorf("loading attendance: %w", err)
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var r model.AttendanceRecord
		var feedback string
		if err := rows.Scan(&r.PersonID, &r.SessionID, &r.Present, &feedback); err != nil {
			return nil, fmt.Errorf("scanning attendance record: %w", err)
		}
		r.Feedback = model.Feedback(feedback)
		records = append(records, r)
	}
	return records, rows.Err()
}

func parseStoredTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return t.UTC(), nil
}
