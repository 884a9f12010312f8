// File: student.go
// Title: Student Family Parsers
// Description: Leaf parsers of the student family. Each parser tokenizes
//              its argument string, enforces the command's structural
//              rules, converts fields through the field parsers, and
//              attaches the command's usage to every failure.

package parser

import (
	"strings"

	"github.com/msto63/tutorbase/internal/logic/commands"
	"github.com/msto63/tutorbase/internal/model"
)

// parseAddStudent parses "student add n/NAME p/PHONE e/EMAIL a/ADDRESS
// [t/TAG]... [m/MEMO]". All four core fields must be present and the
// preamble must be empty.
func parseAddStudent(args string) (commands.Command, error) {
	mm := Tokenize(args,
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag, PrefixMemo)

	name, hasName := mm.Value(PrefixName)
	phone, hasPhone := mm.Value(PrefixPhone)
	email, hasEmail := mm.Value(PrefixEmail)
	address, hasAddress := mm.Value(PrefixAddress)
	if !hasName || !hasPhone || !hasEmail || !hasAddress || mm.Preamble() != "" {
		return nil, invalidFormat(commands.AddStudentUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixMemo); err != nil {
		return nil, withUsage(err, commands.AddStudentUsage)
	}

	person := model.Person{}
	var err error
	if person.Name, err = ParseName(name); err != nil {
		return nil, withUsage(err, commands.AddStudentUsage)
	}
	if person.Phone, err = ParsePhone(phone); err != nil {
		return nil, withUsage(err, commands.AddStudentUsage)
	}
	if person.Email, err = ParseEmail(email); err != nil {
		return nil, withUsage(err, commands.AddStudentUsage)
	}
	if person.Address, err = ParseAddress(address); err != nil {
		return nil, withUsage(err, commands.AddStudentUsage)
	}
	if memo, ok := mm.Value(PrefixMemo); ok {
		if person.Memo, err = ParseMemo(memo); err != nil {
			return nil, withUsage(err, commands.AddStudentUsage)
		}
	}
	if person.Tags, err = ParseTags(mm.AllValues(PrefixTag)); err != nil {
		return nil, withUsage(err, commands.AddStudentUsage)
	}
	return commands.AddStudentCommand{Person: person}, nil
}

// parseSearchStudent parses "student search [n/KEYWORDS] [t/TAG]...
// [session/SESSION_ID] [attended/SESSION_ID]". At least one criterion
// must be given; criteria combine with OR at execution time.
func parseSearchStudent(args string) (commands.Command, error) {
	mm := Tokenize(args, PrefixName, PrefixTag, PrefixSessionID, PrefixAttended)
	if mm.Preamble() != "" {
		return nil, invalidFormat(commands.SearchStudentUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixName, PrefixSessionID, PrefixAttended); err != nil {
		return nil, withUsage(err, commands.SearchStudentUsage)
	}

	var predicates []model.Predicate[model.Person]
	if keywords, ok := mm.Value(PrefixName); ok {
		fields := strings.Fields(keywords)
		if len(fields) == 0 {
			return nil, invalidFormat(commands.SearchStudentUsage)
		}
		predicates = append(predicates, &model.NameContainsPredicate{Keywords: fields})
	}
	if tagValues := mm.AllValues(PrefixTag); len(tagValues) > 0 {
		tags, err := ParseTags(tagValues)
		if err != nil {
			return nil, withUsage(err, commands.SearchStudentUsage)
		}
		predicates = append(predicates, &model.HasTagPredicate{Tags: tags})
	}
	if value, ok := mm.Value(PrefixSessionID); ok {
		id, err := ParseSessionID(value)
		if err != nil {
			return nil, withUsage(err, commands.SearchStudentUsage)
		}
		predicates = append(predicates, &model.EnrolledSessionPredicate{SessionID: id})
	}
	if value, ok := mm.Value(PrefixAttended); ok {
		id, err := ParseSessionID(value)
		if err != nil {
			return nil, withUsage(err, commands.SearchStudentUsage)
		}
		predicates = append(predicates, &model.AttendedSessionPredicate{SessionID: id})
	}
	if len(predicates) == 0 {
		return nil, &ParseError{Message: MessageNoSearchCriteria, Usage: commands.SearchStudentUsage}
	}
	return commands.SearchStudentCommand{Filter: model.NewFilter(predicates...)}, nil
}

// parseViewStudent parses "student view STUDENT_IDENTITY".
func parseViewStudent(args string) (commands.Command, error) {
	identity, err := parseIdentityArg(args, commands.ViewStudentUsage)
	if err != nil {
		return nil, err
	}
	return commands.ViewStudentCommand{Identity: identity}, nil
}

// parseEditStudent parses "student edit STUDENT_IDENTITY [n/NAME]
// [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]... [m/MEMO]". At least one
// field must be given. A single empty t/ clears all tags; the patch
// distinguishes "tags untouched" (nil) from "tags replaced" (non-nil,
// possibly empty).
func parseEditStudent(args string) (commands.Command, error) {
	mm := Tokenize(args,
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag, PrefixMemo)
	if mm.Preamble() == "" {
		return nil, invalidFormat(commands.EditStudentUsage)
	}
	identity, err := ParseIdentity(mm.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.EditStudentUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixMemo); err != nil {
		return nil, withUsage(err, commands.EditStudentUsage)
	}

	patch := model.PersonPatch{}
	if value, ok := mm.Value(PrefixName); ok {
		name, err := ParseName(value)
		if err != nil {
			return nil, withUsage(err, commands.EditStudentUsage)
		}
		patch.Name = &name
	}
	if value, ok := mm.Value(PrefixPhone); ok {
		phone, err := ParsePhone(value)
		if err != nil {
			return nil, withUsage(err, commands.EditStudentUsage)
		}
		patch.Phone = &phone
	}
	if value, ok := mm.Value(PrefixEmail); ok {
		email, err := ParseEmail(value)
		if err != nil {
			return nil, withUsage(err, commands.EditStudentUsage)
		}
		patch.Email = &email
	}
	if value, ok := mm.Value(PrefixAddress); ok {
		address, err := ParseAddress(value)
		if err != nil {
			return nil, withUsage(err, commands.EditStudentUsage)
		}
		patch.Address = &address
	}
	if value, ok := mm.Value(PrefixMemo); ok {
		memo, err := ParseMemo(value)
		if err != nil {
			return nil, withUsage(err, commands.EditStudentUsage)
		}
		patch.Memo = &memo
	}
	patch.Tags, err = parseTagsForEdit(mm.AllValues(PrefixTag))
	if err != nil {
		return nil, withUsage(err, commands.EditStudentUsage)
	}

	if !patch.Any() {
		return nil, &ParseError{Message: MessageNotEdited, Usage: commands.EditStudentUsage}
	}
	return commands.EditStudentCommand{Identity: identity, Patch: patch}, nil
}

// parseTagsForEdit maps tag values to the patch's tag semantics: no
// values leaves tags untouched (nil), a single empty value clears them
// (empty non-nil set), anything else is a replacement set.
func parseTagsForEdit(values []string) ([]model.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		return []model.Tag{}, nil
	}
	return ParseTags(values)
}

// parseDeleteStudent parses "student delete STUDENT_IDENTITY".
func parseDeleteStudent(args string) (commands.Command, error) {
	identity, err := parseIdentityArg(args, commands.DeleteStudentUsage)
	if err != nil {
		return nil, err
	}
	return commands.DeleteStudentCommand{Identity: identity}, nil
}

// parseRestoreStudent parses "student restore STUDENT_IDENTITY".
func parseRestoreStudent(args string) (commands.Command, error) {
	identity, err := parseIdentityArg(args, commands.RestoreStudentUsage)
	if err != nil {
		return nil, err
	}
	return commands.RestoreStudentCommand{Identity: identity}, nil
}

// parseUnassign parses "student unassign STUDENT_IDENTITY
// session/SESSION_ID".
func parseUnassign(args string) (commands.Command, error) {
	identity, sessionID, err := parseEnrollmentArgs(args, commands.UnassignUsage)
	if err != nil {
		return nil, err
	}
	return commands.UnassignCommand{Identity: identity, SessionID: sessionID}, nil
}

// parseIdentityArg parses a bare STUDENT_IDENTITY argument string for the
// single-argument student commands.
func parseIdentityArg(args, usage string) (model.Identity, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return model.Identity{}, invalidFormat(usage)
	}
	identity, err := ParseIdentity(trimmed)
	if err != nil {
		return model.Identity{}, invalidFormat(usage)
	}
	return identity, nil
}

// parseEnrollmentArgs parses the shared "STUDENT_IDENTITY
// session/SESSION_ID" shape of the enrollment-link commands.
func parseEnrollmentArgs(args, usage string) (model.Identity, model.ID, error) {
	mm := Tokenize(args, PrefixSessionID)
	sessionValue, hasSession := mm.Value(PrefixSessionID)
	if mm.Preamble() == "" || !hasSession || strings.TrimSpace(sessionValue) == "" {
		return model.Identity{}, model.ID{}, invalidFormat(usage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixSessionID); err != nil {
		return model.Identity{}, model.ID{}, withUsage(err, usage)
	}
	identity, err := ParseIdentity(mm.Preamble())
	if err != nil {
		return model.Identity{}, model.ID{}, invalidFormat(usage)
	}
	sessionID, err := ParseSessionID(sessionValue)
	if err != nil {
		return model.Identity{}, model.ID{}, withUsage(err, usage)
	}
	return identity, sessionID, nil
}
