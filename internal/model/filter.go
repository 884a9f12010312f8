// File: filter.go
// Title: Predicate Filter Composer
// Description: Implements composable boolean predicates over students and
//              sessions and their OR-combination into a single filter
//              predicate. Predicates that depend on attendance data receive
//              an explicit snapshot at composition time.

package model

import (
	"strings"
	"time"
)

// Predicate is a boolean test over an entity of type T.
type Predicate[T any] interface {
	Test(v T) bool
}

// Filter combines an ordered list of predicates into one predicate equal
// to their logical OR. An empty filter matches everything.
type Filter[T any] struct {
	predicates []Predicate[T]
}

// NewFilter returns a filter over the given predicates.
func NewFilter[T any](predicates ...Predicate[T]) Filter[T] {
	return Filter[T]{predicates: predicates}
}

// Compose returns the OR-combination of the filter's predicates as a
// single function. Predicates that depend on live attendance data are
// initialized against the given snapshot; the returned predicate's
// behavior is fixed at composition time and is not affected by later
// mutations of the attendance records.
func (f Filter[T]) Compose(records []AttendanceRecord) func(T) bool {
	snapshot := make([]AttendanceRecord, len(records))
	copy(snapshot, records)

	for _, p := range f.predicates {
		if aware, ok := p.(attendanceAware); ok {
			aware.init(snapshot)
		}
	}

	predicates := f.predicates
	if len(predicates) == 0 {
		return func(T) bool { return true }
	}
	return func(v T) bool {
		for _, p := range predicates {
			if p.Test(v) {
				return true
			}
		}
		return false
	}
}

// attendanceAware is implemented by predicates that must capture the
// attendance snapshot before they can be evaluated.
type attendanceAware interface {
	init(records []AttendanceRecord)
}

// NameContainsPredicate matches students whose name contains any of the
// given keywords as a full word, ignoring case.
type NameContainsPredicate struct {
	Keywords []string
}

// Test implements Predicate.
func (p *NameContainsPredicate) Test(person Person) bool {
	words := strings.Fields(strings.ToLower(person.Name.String()))
	for _, kw := range p.Keywords {
		kw = strings.ToLower(kw)
		for _, w := range words {
			if w == kw {
				return true
			}
		}
	}
	return false
}

// HasTagPredicate matches students holding any of the given tags.
type HasTagPredicate struct {
	Tags []Tag
}

// Test implements Predicate.
func (p *HasTagPredicate) Test(person Person) bool {
	for _, want := range p.Tags {
		for _, t := range person.Tags {
			if t == want {
				return true
			}
		}
	}
	return false
}

// EnrolledSessionPredicate matches students that have an attendance record
// for the given session, present or not. It requires the attendance
// snapshot supplied at composition time. An unresolvable session id
// matches nothing.
type EnrolledSessionPredicate struct {
	SessionID ID

	records []AttendanceRecord
}

func (p *EnrolledSessionPredicate) init(records []AttendanceRecord) {
	p.records = records
}

// Test implements Predicate.
func (p *EnrolledSessionPredicate) Test(person Person) bool {
	for _, r := range p.records {
		if r.PersonID == person.ID && p.SessionID.Matches(r.SessionID) {
			return true
		}
	}
	return false
}

// AttendedSessionPredicate matches students marked present in the given
// session. It requires the attendance snapshot supplied at composition
// time. An unresolvable session id matches nothing.
type AttendedSessionPredicate struct {
	SessionID ID

	records []AttendanceRecord
}

func (p *AttendedSessionPredicate) init(records []AttendanceRecord) {
	p.records = records
}

// Test implements Predicate.
func (p *AttendedSessionPredicate) Test(person Person) bool {
	for _, r := range p.records {
		if r.PersonID == person.ID && p.SessionID.Matches(r.SessionID) && r.Present {
			return true
		}
	}
	return false
}

// SessionOnDatePredicate matches sessions held on the given calendar date.
type SessionOnDatePredicate struct {
	Date time.Time
}

// Test implements Predicate.
func (p *SessionOnDatePredicate) Test(s Session) bool {
	return s.Date.Equal(p.Date)
}

// SubjectContainsPredicate matches sessions whose subject contains any of
// the given keywords as a full word, ignoring case.
type SubjectContainsPredicate struct {
	Keywords []string
}

// Test implements Predicate.
func (p *SubjectContainsPredicate) Test(s Session) bool {
	words := strings.Fields(strings.ToLower(s.Subject.String()))
	for _, kw := range p.Keywords {
		kw = strings.ToLower(kw)
		for _, w := range words {
			if w == kw {
				return true
			}
		}
	}
	return false
}
