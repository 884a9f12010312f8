// File: filter_test.go
// Title: Filter Composition Tests
// Description: Tests for the OR-combination of predicates and the
//              attendance snapshot semantics.

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	alice = Person{ID: 1, Name: "Alice Pauline", Tags: NewTagSet("algebra")}
	bob   = Person{ID: 2, Name: "Bob Choo", Tags: NewTagSet("geometry")}
	carl  = Person{ID: 3, Name: "Carl Kurz"}
)

func TestEmptyFilterMatchesEverything(t *testing.T) {
	match := NewFilter[Person]().Compose(nil)
	assert.True(t, match(alice))
	assert.True(t, match(Person{}))
}

func TestNameContainsPredicate(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		person   Person
		want     bool
	}{
		{"single keyword match", []string{"alice"}, alice, true},
		{"case-insensitive", []string{"ALICE"}, alice, true},
		{"second word", []string{"pauline"}, alice, true},
		{"one of several keywords", []string{"bob", "alice"}, alice, true},
		{"no match", []string{"bob"}, alice, false},
		{"substring is not a word match", []string{"ali"}, alice, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &NameContainsPredicate{Keywords: tt.keywords}
			assert.Equal(t, tt.want, p.Test(tt.person))
		})
	}
}

func TestHasTagPredicate(t *testing.T) {
	p := &HasTagPredicate{Tags: []Tag{"algebra", "calculus"}}
	assert.True(t, p.Test(alice))
	assert.False(t, p.Test(bob))
	assert.False(t, p.Test(carl))
}

func TestFilterCombinesWithOr(t *testing.T) {
	filter := NewFilter[Person](
		&NameContainsPredicate{Keywords: []string{"bob"}},
		&HasTagPredicate{Tags: []Tag{"algebra"}},
	)
	match := filter.Compose(nil)

	assert.True(t, match(alice), "matches second predicate only")
	assert.True(t, match(bob), "matches first predicate only")
	assert.False(t, match(carl), "matches neither")
}

func TestEnrolledSessionPredicate(t *testing.T) {
	records := []AttendanceRecord{
		{PersonID: alice.ID, SessionID: 5},
		{PersonID: bob.ID, SessionID: 7, Present: true},
	}

	match := NewFilter[Person](&EnrolledSessionPredicate{SessionID: KnownID(5)}).Compose(records)
	assert.True(t, match(alice))
	assert.False(t, match(bob))

	t.Run("unresolvable id matches nothing", func(t *testing.T) {
		match := NewFilter[Person](&EnrolledSessionPredicate{SessionID: UnresolvableID()}).Compose(records)
		assert.False(t, match(alice))
		assert.False(t, match(bob))
	})
}

func TestAttendedSessionPredicate(t *testing.T) {
	records := []AttendanceRecord{
		{PersonID: alice.ID, SessionID: 5},
		{PersonID: bob.ID, SessionID: 5, Present: true},
	}
	match := NewFilter[Person](&AttendedSessionPredicate{SessionID: KnownID(5)}).Compose(records)

	assert.False(t, match(alice), "enrolled but not marked present")
	assert.True(t, match(bob))
}

func TestComposeSnapshotIsFixed(t *testing.T) {
	records := []AttendanceRecord{{PersonID: alice.ID, SessionID: 5}}
	match := NewFilter[Person](&EnrolledSessionPredicate{SessionID: KnownID(5)}).Compose(records)

	// Mutating the caller's slice after composition must not change the
	// composed predicate's behavior.
	records[0] = AttendanceRecord{PersonID: bob.ID, SessionID: 5}

	assert.True(t, match(alice))
	assert.False(t, match(bob))
}

func TestSessionPredicates(t *testing.T) {
	mar18 := time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)
	math := Session{ID: 1, Date: mar18, Subject: "Advanced Mathematics"}
	physics := Session{ID: 2, Date: mar18.AddDate(0, 0, 1), Subject: "Physics"}

	t.Run("on date", func(t *testing.T) {
		p := &SessionOnDatePredicate{Date: mar18}
		assert.True(t, p.Test(math))
		assert.False(t, p.Test(physics))
	})

	t.Run("subject keywords", func(t *testing.T) {
		p := &SubjectContainsPredicate{Keywords: []string{"mathematics"}}
		assert.True(t, p.Test(math))
		assert.False(t, p.Test(physics))
	})

	t.Run("or across criteria", func(t *testing.T) {
		match := NewFilter[Session](
			&SessionOnDatePredicate{Date: mar18},
			&SubjectContainsPredicate{Keywords: []string{"physics"}},
		).Compose(nil)
		assert.True(t, match(math))
		assert.True(t, match(physics))
	})
}
