// File: doc.go
// Title: Model Package Documentation
// Description: Package overview for the tutorbase domain model.

// Package model holds the domain model of tutorbase: students, tutoring
// sessions, attendance records, and the in-memory address book that owns
// the canonical collections of all three.
//
// The package exposes two layers:
//
//   - Value types with their validation rules (Name, Phone, Email, Address,
//     Memo, Tag, Subject, Feedback, Timeslot, ID, Identity). Each type
//     carries its canonical constraint message so that parsers can report
//     stable, field-specific errors.
//
//   - The Model interface and its AddressBook implementation. Commands
//     mutate state exclusively through Model; the address book enforces
//     referential integrity between students, sessions, and attendance
//     records (archiving students keeps attendance history consistent,
//     deleting sessions cascades record removal).
//
// The model is exclusively owned by the single execution goroutine of the
// command engine. There is no concurrent mutator and therefore no locking.
package model
