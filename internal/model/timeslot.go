// File: timeslot.go
// Title: Timeslot Value Type
// Description: Implements the start/end time range of a scheduled session.
//              The end must be strictly after the start; violating this is
//              a domain error distinct from malformed text.

package model

import (
	"errors"
	"fmt"
	"time"
)

// TimeslotEndNotAfterStart is the canonical message for a timeslot whose
// end does not lie strictly after its start.
const TimeslotEndNotAfterStart = "The end datetime of the timeslot must be after the start datetime"

// ErrEndNotAfterStart reports a timeslot ordering violation. It is
// deliberately distinct from format errors so callers can tell a
// well-formed but inverted range from malformed text.
var ErrEndNotAfterStart = errors.New(TimeslotEndNotAfterStart)

// TimeLayout is the minute-resolution layout used when rendering timeslot
// endpoints.
const TimeLayout = "15:04"

// Timeslot is a start and end point in time, each with its own date. The
// range may lie within a single day or span across days.
type Timeslot struct {
	Start time.Time
	End   time.Time
}

// NewTimeslot returns a timeslot from start to end. It returns
// ErrEndNotAfterStart unless end is strictly after start.
func NewTimeslot(start, end time.Time) (Timeslot, error) {
	if !end.After(start) {
		return Timeslot{}, ErrEndNotAfterStart
	}
	return Timeslot{Start: start, End: end}, nil
}

// Equal reports whether two timeslots describe the same range.
func (t Timeslot) Equal(other Timeslot) bool {
	return t.Start.Equal(other.Start) && t.End.Equal(other.End)
}

func (t Timeslot) String() string {
	startDay := t.Start.Format(DateLayout)
	endDay := t.End.Format(DateLayout)
	if startDay == endDay {
		return fmt.Sprintf("%s %s-%s", startDay, t.Start.Format(TimeLayout), t.End.Format(TimeLayout))
	}
	return fmt.Sprintf("%s %s-%s %s", startDay, t.Start.Format(TimeLayout), endDay, t.End.Format(TimeLayout))
}
