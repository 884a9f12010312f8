// File: attendance.go
// Title: Attendance Record Entity
// Description: Defines the (student, session) attendance record with its
//              presence flag and optional feedback.

package model

import "fmt"

// Feedback is a free-form note on a student's attendance in a session.
// Any value is valid; the empty feedback means "no feedback".
type Feedback string

func (f Feedback) String() string { return string(f) }

// AttendanceRecord links a student to a session. A record doubles as the
// enrollment link: enrolling creates one with Present unset. At most one
// record may exist per (student, session) pair.
type AttendanceRecord struct {
	PersonID  int
	SessionID int
	Present   bool
	Feedback  Feedback
}

// SameLink reports whether r and other describe the same (student,
// session) pair, regardless of presence or feedback.
func (r AttendanceRecord) SameLink(other AttendanceRecord) bool {
	return r.PersonID == other.PersonID && r.SessionID == other.SessionID
}

func (r AttendanceRecord) String() string {
	out := fmt.Sprintf("Student %d in session %d: ", r.PersonID, r.SessionID)
	if r.Present {
		out += "present"
	} else {
		out += "absent"
	}
	if r.Feedback != "" {
		out += "; Feedback: " + r.Feedback.String()
	}
	return out
}
