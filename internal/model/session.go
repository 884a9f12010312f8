// File: session.go
// Title: Session Entity and Subject Value Type
// Description: Defines the tutoring Session entity and its subject label.

package model

import (
	"fmt"
	"regexp"
	"time"
)

// SubjectConstraints is the canonical constraint message for invalid
// subject labels.
const SubjectConstraints = "Subjects should only contain alphanumeric characters and spaces, and it should not be blank"

var subjectRegexp = regexp.MustCompile(`^[[:alnum:]][[:alnum:] ]*$`)

// Subject is the subject label of a tutoring session.
type Subject string

// IsValidSubject reports whether s is a valid subject label.
func IsValidSubject(s string) bool {
	return subjectRegexp.MatchString(s)
}

func (s Subject) String() string { return string(s) }

// DateLayout is the calendar date layout used across the command surface.
const DateLayout = "2 Jan 2006"

// Session represents a tutoring session. The ID is assigned by the address
// book when the session is added; a zero ID marks a not-yet-stored session.
// Timeslot is the optional scheduled time range of the session.
type Session struct {
	ID       int
	Date     time.Time
	Subject  Subject
	Timeslot *Timeslot
}

// IsSameSession reports whether s and other refer to the same session.
// Sessions with assigned ids compare by id; otherwise a session with the
// same date and subject is considered the same, which is the duplicate
// rule applied on add.
func (s Session) IsSameSession(other Session) bool {
	if s.ID != 0 && other.ID != 0 {
		return s.ID == other.ID
	}
	return s.Date.Equal(other.Date) && s.Subject == other.Subject
}

// Equal reports full field equality between two sessions.
func (s Session) Equal(other Session) bool {
	if s.ID != other.ID || !s.Date.Equal(other.Date) || s.Subject != other.Subject {
		return false
	}
	switch {
	case s.Timeslot == nil && other.Timeslot == nil:
		return true
	case s.Timeslot == nil || other.Timeslot == nil:
		return false
	default:
		return s.Timeslot.Equal(*other.Timeslot)
	}
}

func (s Session) String() string {
	out := fmt.Sprintf("Session %d: %s; Date: %s", s.ID, s.Subject, s.Date.Format(DateLayout))
	if s.Timeslot != nil {
		out += "; Timeslot: " + s.Timeslot.String()
	}
	return out
}
