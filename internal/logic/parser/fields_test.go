// File: fields_test.go
// Title: Field Parser Tests
// Description: Tests for the typed field parsers, including identity
//              classification, overflow handling, and the strict date and
//              timeslot formats.

package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/tutorbase/internal/model"
)

func TestParseIdentity(t *testing.T) {
	t.Run("numeric token becomes an id", func(t *testing.T) {
		identity, err := ParseIdentity(" 42 ")
		require.NoError(t, err)
		id, ok := identity.ID()
		require.True(t, ok)
		assert.True(t, id.Matches(42))
	})

	t.Run("name token becomes a name", func(t *testing.T) {
		identity, err := ParseIdentity("Alice  Pauline")
		require.NoError(t, err)
		name, ok := identity.Name()
		require.True(t, ok)
		assert.Equal(t, model.Name("Alice Pauline"), name, "whitespace collapses")
	})

	t.Run("overflow maps to the unresolvable id", func(t *testing.T) {
		identity, err := ParseIdentity("99999999999999999999999999")
		require.NoError(t, err)
		id, ok := identity.ID()
		require.True(t, ok)
		assert.False(t, id.Resolvable())
	})

	t.Run("zero is not a valid id but not a name either", func(t *testing.T) {
		_, err := ParseIdentity("0")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, model.IdentityConstraints, perr.Message)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := ParseIdentity("@@@")
		assert.Error(t, err)
	})
}

func TestParseSessionID(t *testing.T) {
	id, err := ParseSessionID("7")
	require.NoError(t, err)
	assert.True(t, id.Matches(7))

	id, err = ParseSessionID("99999999999999999999999999")
	require.NoError(t, err)
	assert.False(t, id.Resolvable(), "overflow is well-formed but unresolvable")

	for _, bad := range []string{"", "0", "00", "-1", "1a", "1 2"} {
		_, err := ParseSessionID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFieldParsersRejectInvalidValues(t *testing.T) {
	_, err := ParseName("John*")
	assertParseMessage(t, err, model.NameConstraints)

	_, err = ParsePhone("12")
	assertParseMessage(t, err, model.PhoneConstraints)

	_, err = ParseEmail("not-an-email")
	assertParseMessage(t, err, model.EmailConstraints)

	_, err = ParseAddress("   ")
	assertParseMessage(t, err, model.AddressConstraints)

	_, err = ParseTag("two words")
	assertParseMessage(t, err, model.TagConstraints)

	_, err = ParseSubject("Math!")
	assertParseMessage(t, err, model.SubjectConstraints)
}

func TestParseTagsDeduplicatesAndSorts(t *testing.T) {
	tags, err := ParseTags([]string{"geometry", "algebra", "geometry"})
	require.NoError(t, err)
	assert.Equal(t, []model.Tag{"algebra", "geometry"}, tags)
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseDate("18 Mar 2025")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("case-insensitive month", func(t *testing.T) {
		got, err := ParseDate("18 mar 2025")
		require.NoError(t, err)
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("single digit day", func(t *testing.T) {
		_, err := ParseDate("5 Jan 2026")
		assert.NoError(t, err)
	})

	invalid := []string{
		"",
		"18 March 2025",  // full month name
		"18-03-2025",     // wrong separator
		"31 Apr 2025",    // day does not exist
		"29 Feb 2025",    // not a leap year
		"18 Mar 25",      // two-digit year
		"018 Mar 2025",   // three-digit day
		"18 Mar 2025 10", // trailing token
	}
	for _, input := range invalid {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := ParseDate(input)
			assertParseMessage(t, err, MessageInvalidDateFormat)
		})
	}
}

func TestParseTimeslot(t *testing.T) {
	t.Run("short form end on same day", func(t *testing.T) {
		slot, err := ParseTimeslot("25 Dec 2025 10:00-12:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC), slot.Start)
		assert.Equal(t, time.Date(2025, time.December, 25, 12, 0, 0, 0, time.UTC), slot.End)
	})

	t.Run("full form end with its own date", func(t *testing.T) {
		slot, err := ParseTimeslot("25 Dec 2025 22:00-26 Dec 2025 01:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.December, 26, 1, 30, 0, 0, time.UTC), slot.End)
	})

	t.Run("single digit hour", func(t *testing.T) {
		slot, err := ParseTimeslot("25 Dec 2025 9:00-10:00")
		require.NoError(t, err)
		assert.Equal(t, 9, slot.Start.Hour())
	})

	t.Run("end not after start is an ordering error", func(t *testing.T) {
		for _, input := range []string{
			"25 Dec 2025 12:00-10:00",
			"25 Dec 2025 10:00-10:00",
			"26 Dec 2025 10:00-25 Dec 2025 12:00",
		} {
			_, err := ParseTimeslot(input)
			assertParseMessage(t, err, model.TimeslotEndNotAfterStart)
		}
	})

	invalid := []string{
		"",
		"25 Dec 2025 10:00",        // no hyphen
		"10:00-12:00",              // start missing its date
		"25 Dec 2025 10:60-12:00",  // minute out of range
		"25 Dec 2025 24:00-25:00",  // hour out of range
		"25 Dec 2025 10:0-12:00",   // single-digit minutes
		"31 Nov 2025 10:00-12:00",  // day does not exist
		"25 Dec 2025 10:00-26 Dec 12:00", // partial end date
	}
	for _, input := range invalid {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := ParseTimeslot(input)
			assertParseMessage(t, err, MessageInvalidTimeslotFormat)
		})
	}
}

func assertParseMessage(t *testing.T, err error, want string) {
	t.Helper()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, want, perr.Message)
}
