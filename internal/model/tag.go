// File: tag.go
// Title: Tag Value Type
// Description: Implements the value-equal tag label shared freely across
//              students.

package model

import (
	"regexp"
	"slices"
)

// TagConstraints is the canonical constraint message for invalid tags.
const TagConstraints = "Tags names should be alphanumeric"

var tagRegexp = regexp.MustCompile(`^[[:alnum:]]+$`)

// Tag is a short validated label attached to a student. Tags are value
// equal and have no identity of their own: removing a tag from one student
// does not affect other students holding the same tag text.
type Tag string

// IsValidTag reports whether s is a valid tag name.
func IsValidTag(s string) bool {
	return tagRegexp.MatchString(s)
}

func (t Tag) String() string { return string(t) }

// NewTagSet returns tags sorted and deduplicated, the canonical in-memory
// representation of a person's tag set.
func NewTagSet(tags ...Tag) []Tag {
	set := slices.Clone(tags)
	slices.Sort(set)
	return slices.Compact(set)
}
