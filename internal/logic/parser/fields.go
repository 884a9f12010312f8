// File: fields.go
// Title: Field Parsers
// Description: Pure functions validating and converting individual textual
//              tokens into typed domain values. Each parser trims its
//              input, collapses internal whitespace for free-text fields,
//              and fails with the field's canonical constraint message.

package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/tutorbase/internal/model"
)

// Canonical messages for compound date/time fields.
const (
	MessageInvalidDateFormat = "Invalid date or incorrect date format. " +
		"Please ensure it follows the format 'dd MMM yyyy' (e.g. '25 Dec 2025') and is a valid date."
	MessageInvalidTimeslotFormat = "Invalid timeslot or incorrect timeslot format. " +
		"Please ensure it follows the format 'dd MMM yyyy HH:mm-HH:mm' or 'dd MMM yyyy HH:mm-dd MMM yyyy HH:mm' " +
		"(e.g. '25 Dec 2025 10:00-25 Dec 2025 12:00'), and the date and time provided is valid."
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace trims s and collapses internal whitespace runs to a
// single space.
func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// isNonZeroUnsignedInteger reports whether s is a syntactically well-formed
// non-zero unsigned integer: digits only, at least one of them non-zero.
// No sign, no spaces. The value may exceed the representable range.
func isNonZeroUnsignedInteger(s string) bool {
	if s == "" {
		return false
	}
	nonZero := false
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		if r != '0' {
			nonZero = true
		}
	}
	return nonZero
}

// parseBoundedInt converts a well-formed unsigned integer token, reporting
// ok=false when the value exceeds the representable integer range.
func parseBoundedInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseIdentity classifies a token as a numeric student id or a student
// name. Numeric overflow maps to the unresolvable id rather than failing,
// so execution-time lookups uniformly report "not found".
func ParseIdentity(s string) (model.Identity, error) {
	token := collapseWhitespace(s)
	if allDigits(token) {
		// All-digit tokens are id attempts, never names; zero is rejected.
		if !isNonZeroUnsignedInteger(token) {
			return model.Identity{}, NewParseError(model.IdentityConstraints)
		}
		n, ok := parseBoundedInt(token)
		if !ok {
			return model.IdentityOfID(model.UnresolvableID()), nil
		}
		return model.IdentityOfID(model.KnownID(n)), nil
	}
	if model.IsValidName(token) {
		return model.IdentityOfName(model.Name(token)), nil
	}
	return model.Identity{}, NewParseError(model.IdentityConstraints)
}

// ParseSessionID converts a session id token. Overflowing values map to
// the unresolvable id; malformed tokens fail.
func ParseSessionID(s string) (model.ID, error) {
	token := strings.TrimSpace(s)
	if !isNonZeroUnsignedInteger(token) {
		return model.ID{}, NewParseError(model.SessionIDConstraints)
	}
	n, ok := parseBoundedInt(token)
	if !ok {
		return model.UnresolvableID(), nil
	}
	return model.KnownID(n), nil
}

// ParseName validates and converts a name token.
func ParseName(s string) (model.Name, error) {
	token := collapseWhitespace(s)
	if !model.IsValidName(token) {
		return "", NewParseError(model.NameConstraints)
	}
	return model.Name(token), nil
}

// ParsePhone validates and converts a phone token.
func ParsePhone(s string) (model.Phone, error) {
	token := strings.TrimSpace(s)
	if !model.IsValidPhone(token) {
		return "", NewParseError(model.PhoneConstraints)
	}
	return model.Phone(token), nil
}

// ParseEmail validates and converts an email token.
func ParseEmail(s string) (model.Email, error) {
	token := strings.TrimSpace(s)
	if !model.IsValidEmail(token) {
		return "", NewParseError(model.EmailConstraints)
	}
	return model.Email(token), nil
}

// ParseAddress validates and converts an address token.
func ParseAddress(s string) (model.Address, error) {
	token := collapseWhitespace(s)
	if !model.IsValidAddress(token) {
		return "", NewParseError(model.AddressConstraints)
	}
	return model.Address(token), nil
}

// ParseMemo converts a memo token. Memos accept any value; the empty memo
// means "no memo".
func ParseMemo(s string) (model.Memo, error) {
	return model.Memo(strings.TrimSpace(s)), nil
}

// ParseTag validates and converts a single tag token.
func ParseTag(s string) (model.Tag, error) {
	token := strings.TrimSpace(s)
	if !model.IsValidTag(token) {
		return "", NewParseError(model.TagConstraints)
	}
	return model.Tag(token), nil
}

// ParseTags converts a list of tag tokens into a tag set.
func ParseTags(values []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(values))
	for _, v := range values {
		tag, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return model.NewTagSet(tags...), nil
}

// ParseSubject validates and converts a subject token.
func ParseSubject(s string) (model.Subject, error) {
	token := collapseWhitespace(s)
	if !model.IsValidSubject(token) {
		return "", NewParseError(model.SubjectConstraints)
	}
	return model.Subject(token), nil
}

// ParseFeedback converts a feedback token. Feedback accepts any value; the
// empty feedback means "no feedback".
func ParseFeedback(s string) (model.Feedback, error) {
	return model.Feedback(strings.TrimSpace(s)), nil
}

// months maps the strict three-letter English month tokens, compared
// case-insensitively.
var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseDateTokens parses a strict 'd MMM uuuu' calendar date from its
// three tokens. No lenient rollover: day 31 in a 30-day month is rejected.
func parseDateTokens(dayTok, monthTok, yearTok string) (time.Time, bool) {
	if len(dayTok) < 1 || len(dayTok) > 2 || !allDigits(dayTok) {
		return time.Time{}, false
	}
	if len(yearTok) != 4 || !allDigits(yearTok) {
		return time.Time{}, false
	}
	month, ok := months[strings.ToLower(monthTok)]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayTok)
	year, _ := strconv.Atoi(yearTok)
	if day < 1 {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month || date.Year() != year {
		return time.Time{}, false
	}
	return date, true
}

// parseTimeToken parses a strict 'H:mm' time of day: one or two hour
// digits, exactly two minute digits.
func parseTimeToken(tok string) (hour, minute int, ok bool) {
	parts := strings.Split(tok, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hTok, mTok := parts[0], parts[1]
	if len(hTok) < 1 || len(hTok) > 2 || !allDigits(hTok) {
		return 0, 0, false
	}
	if len(mTok) != 2 || !allDigits(mTok) {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(hTok)
	minute, _ = strconv.Atoi(mTok)
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// ParseDate parses a strict 'd MMM uuuu' calendar date.
func ParseDate(s string) (time.Time, error) {
	tokens := strings.Fields(strings.TrimSpace(s))
	if len(tokens) != 3 {
		return time.Time{}, NewParseError(MessageInvalidDateFormat)
	}
	date, ok := parseDateTokens(tokens[0], tokens[1], tokens[2])
	if !ok {
		return time.Time{}, NewParseError(MessageInvalidDateFormat)
	}
	return date, nil
}

// ParseTimeslot parses a hyphen-delimited start/end time range. The split
// point is the first hyphen after trimming. The start section must be a
// full 'd MMM uuuu H:mm' datetime. A single-token end is a time on the
// start's date; a 4-token end is an independent full datetime. The
// combined end must lie strictly after the combined start, reported as a
// dedicated ordering error distinct from format errors.
func ParseTimeslot(s string) (model.Timeslot, error) {
	trimmed := strings.TrimSpace(s)
	startStr, endStr, found := strings.Cut(trimmed, "-")
	if !found {
		return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
	}

	startTokens := strings.Fields(strings.TrimSpace(startStr))
	if len(startTokens) != 4 {
		return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
	}
	startDate, ok := parseDateTokens(startTokens[0], startTokens[1], startTokens[2])
	if !ok {
		return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
	}
	startHour, startMin, ok := parseTimeToken(startTokens[3])
	if !ok {
		return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
	}

	endTokens := strings.Fields(strings.TrimSpace(endStr))
	var endDate time.Time
	var endTimeTok string
	switch len(endTokens) {
	case 1:
		endDate = startDate
		endTimeTok = endTokens[0]
	case 4:
		endDate, ok = parseDateTokens(endTokens[0], endTokens[1], endTokens[2])
		if !ok {
			return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
		}
		endTimeTok = endTokens[3]
	default:
		return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
	}
	endHour, endMin, ok := parseTimeToken(endTimeTok)
	if !ok {
		return model.Timeslot{}, NewParseError(MessageInvalidTimeslotFormat)
	}

	start := startDate.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute)
	end := endDate.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute)

	slot, err := model.NewTimeslot(start, end)
	if err != nil {
		return model.Timeslot{}, NewParseError(model.TimeslotEndNotAfterStart)
	}
	return slot, nil
}
