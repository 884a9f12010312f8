// File: session_test.go
// Title: Session and Timeslot Tests
// Description: Tests for session identity, the duplicate rule, and
//              timeslot construction and rendering.

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsValidSubject(t *testing.T) {
	assert.True(t, IsValidSubject("Mathematics"))
	assert.True(t, IsValidSubject("Sec 4 Physics"))
	assert.False(t, IsValidSubject(""))
	assert.False(t, IsValidSubject("Math!"))
	assert.False(t, IsValidSubject(" Math"))
}

func TestSessionIsSameSession(t *testing.T) {
	mar18Math := Session{ID: 1, Date: date(2025, time.March, 18), Subject: "Mathematics"}

	t.Run("assigned ids compare by id", func(t *testing.T) {
		otherData := Session{ID: 1, Date: date(2025, time.April, 2), Subject: "Physics"}
		assert.True(t, mar18Math.IsSameSession(otherData))

		otherID := Session{ID: 2, Date: date(2025, time.March, 18), Subject: "Mathematics"}
		assert.False(t, mar18Math.IsSameSession(otherID))
	})

	t.Run("unassigned id compares by date and subject", func(t *testing.T) {
		candidate := Session{Date: date(2025, time.March, 18), Subject: "Mathematics"}
		assert.True(t, mar18Math.IsSameSession(candidate))

		otherSubject := Session{Date: date(2025, time.March, 18), Subject: "Physics"}
		assert.False(t, mar18Math.IsSameSession(otherSubject))

		otherDate := Session{Date: date(2025, time.March, 19), Subject: "Mathematics"}
		assert.False(t, mar18Math.IsSameSession(otherDate))
	})
}

func TestSessionString(t *testing.T) {
	s := Session{ID: 3, Date: date(2025, time.March, 18), Subject: "Mathematics"}
	assert.Equal(t, "Session 3: Mathematics; Date: 18 Mar 2025", s.String())

	slot, err := NewTimeslot(
		time.Date(2025, time.March, 18, 10, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	s.Timeslot = &slot
	assert.Equal(t, "Session 3: Mathematics; Date: 18 Mar 2025; Timeslot: 18 Mar 2025 10:00-12:00", s.String())
}

func TestNewTimeslot(t *testing.T) {
	start := time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)

	t.Run("end after start", func(t *testing.T) {
		slot, err := NewTimeslot(start, start.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "25 Dec 2025 10:00-12:00", slot.String())
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := NewTimeslot(start, start)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewTimeslot(start, start.Add(-time.Hour))
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("cross-day range renders both dates", func(t *testing.T) {
		slot, err := NewTimeslot(start.Add(12*time.Hour), start.Add(26*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "25 Dec 2025 22:00-26 Dec 2025 12:00", slot.String())
	})
}
