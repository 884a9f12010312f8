// File: session.go
// Title: Session Family Parsers
// Description: Leaf parsers of the session family, including the
//              enrollment and attendance commands that link students to
//              sessions.

package parser

import (
	"strings"

	"github.com/msto63/tutorbase/internal/logic/commands"
	"github.com/msto63/tutorbase/internal/model"
)

// parseAddSession parses "session add d/DATE s/SUBJECT [ts/TIMESLOT]".
func parseAddSession(args string) (commands.Command, error) {
	mm := Tokenize(args, PrefixDate, PrefixSubject, PrefixTimeslot)
	date, hasDate := mm.Value(PrefixDate)
	subject, hasSubject := mm.Value(PrefixSubject)
	if !hasDate || !hasSubject || mm.Preamble() != "" {
		return nil, invalidFormat(commands.AddSessionUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixDate, PrefixSubject, PrefixTimeslot); err != nil {
		return nil, withUsage(err, commands.AddSessionUsage)
	}

	session := model.Session{}
	var err error
	if session.Date, err = ParseDate(date); err != nil {
		return nil, withUsage(err, commands.AddSessionUsage)
	}
	if session.Subject, err = ParseSubject(subject); err != nil {
		return nil, withUsage(err, commands.AddSessionUsage)
	}
	if value, ok := mm.Value(PrefixTimeslot); ok {
		slot, err := ParseTimeslot(value)
		if err != nil {
			return nil, withUsage(err, commands.AddSessionUsage)
		}
		session.Timeslot = &slot
	}
	return commands.AddSessionCommand{Session: session}, nil
}

// parseSearchSession parses "session search [d/DATE] [s/KEYWORDS]". At
// least one criterion must be given; criteria combine with OR at
// execution time.
func parseSearchSession(args string) (commands.Command, error) {
	mm := Tokenize(args, PrefixDate, PrefixSubject)
	if mm.Preamble() != "" {
		return nil, invalidFormat(commands.SearchSessionUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixDate, PrefixSubject); err != nil {
		return nil, withUsage(err, commands.SearchSessionUsage)
	}

	var predicates []model.Predicate[model.Session]
	if value, ok := mm.Value(PrefixDate); ok {
		date, err := ParseDate(value)
		if err != nil {
			return nil, withUsage(err, commands.SearchSessionUsage)
		}
		predicates = append(predicates, &model.SessionOnDatePredicate{Date: date})
	}
	if value, ok := mm.Value(PrefixSubject); ok {
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return nil, invalidFormat(commands.SearchSessionUsage)
		}
		predicates = append(predicates, &model.SubjectContainsPredicate{Keywords: fields})
	}
	if len(predicates) == 0 {
		return nil, &ParseError{Message: MessageNoSearchCriteria, Usage: commands.SearchSessionUsage}
	}
	return commands.SearchSessionCommand{Filter: model.NewFilter(predicates...)}, nil
}

// parseViewSession parses "session view SESSION_ID".
func parseViewSession(args string) (commands.Command, error) {
	id, err := parseSessionIDArg(args, commands.ViewSessionUsage)
	if err != nil {
		return nil, err
	}
	return commands.ViewSessionCommand{SessionID: id}, nil
}

// parseDeleteSession parses "session delete SESSION_ID".
func parseDeleteSession(args string) (commands.Command, error) {
	id, err := parseSessionIDArg(args, commands.DeleteSessionUsage)
	if err != nil {
		return nil, err
	}
	return commands.DeleteSessionCommand{SessionID: id}, nil
}

// parseEnrol parses "session enrol STUDENT_IDENTITY session/SESSION_ID".
func parseEnrol(args string) (commands.Command, error) {
	identity, sessionID, err := parseEnrollmentArgs(args, commands.EnrolUsage)
	if err != nil {
		return nil, err
	}
	return commands.EnrolCommand{Identity: identity, SessionID: sessionID}, nil
}

// parseUnenrol parses "session unenrol STUDENT_IDENTITY
// session/SESSION_ID".
func parseUnenrol(args string) (commands.Command, error) {
	identity, sessionID, err := parseEnrollmentArgs(args, commands.UnenrolUsage)
	if err != nil {
		return nil, err
	}
	return commands.UnenrolCommand{Identity: identity, SessionID: sessionID}, nil
}

// parseAttendanceMark parses "session attendance-mark STUDENT_IDENTITY
// session/SESSION_ID [f/FEEDBACK]".
func parseAttendanceMark(args string) (commands.Command, error) {
	mm := Tokenize(args, PrefixSessionID, PrefixFeedback)
	sessionValue, hasSession := mm.Value(PrefixSessionID)
	if mm.Preamble() == "" || !hasSession || strings.TrimSpace(sessionValue) == "" {
		return nil, invalidFormat(commands.AttendanceMarkUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixSessionID, PrefixFeedback); err != nil {
		return nil, withUsage(err, commands.AttendanceMarkUsage)
	}
	identity, err := ParseIdentity(mm.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.AttendanceMarkUsage)
	}
	sessionID, err := ParseSessionID(sessionValue)
	if err != nil {
		return nil, withUsage(err, commands.AttendanceMarkUsage)
	}
	cmd := commands.AttendanceMarkCommand{Identity: identity, SessionID: sessionID}
	if value, ok := mm.Value(PrefixFeedback); ok {
		if cmd.Feedback, err = ParseFeedback(value); err != nil {
			return nil, withUsage(err, commands.AttendanceMarkUsage)
		}
	}
	return cmd, nil
}

// parseAttendanceUnmark parses "session attendance-unmark
// STUDENT_IDENTITY session/SESSION_ID".
func parseAttendanceUnmark(args string) (commands.Command, error) {
	identity, sessionID, err := parseEnrollmentArgs(args, commands.AttendanceUnmarkUsage)
	if err != nil {
		return nil, err
	}
	return commands.AttendanceUnmarkCommand{Identity: identity, SessionID: sessionID}, nil
}

// parseSessionIDArg parses a bare SESSION_ID argument string for the
// single-argument session commands.
func parseSessionIDArg(args, usage string) (model.ID, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return model.ID{}, invalidFormat(usage)
	}
	id, err := ParseSessionID(trimmed)
	if err != nil {
		return model.ID{}, withUsage(err, usage)
	}
	return id, nil
}
