// File: identity.go
// Title: Entity ID and Student Identity References
// Description: Implements the ID reference type (resolvable or
//              well-formed-but-unresolvable) and the Identity type that
//              refers to a student by either numeric id or name.

package model

import "strconv"

// IdentityConstraints is the canonical message for an identity token that
// is neither a non-zero unsigned integer id nor a valid name.
const IdentityConstraints = "Identity should either be a non-zero unsigned integer ID or a valid student name"

// SessionIDConstraints is the canonical message for a malformed session id.
const SessionIDConstraints = "Session ID should be a non-zero unsigned integer"

// ID refers to an entity by numeric id. An ID is either resolvable (it
// carries a positive integer) or unresolvable: the source token was a
// syntactically well-formed number too large to represent. Unresolvable
// IDs never match any entity, so lookups on them uniformly report "not
// found" instead of conflating overflow with malformed input.
type ID struct {
	n            int
	unresolvable bool
}

// KnownID returns a resolvable ID carrying n.
func KnownID(n int) ID {
	return ID{n: n}
}

// UnresolvableID returns the ID used for well-formed numeric tokens that
// exceed the representable integer range.
func UnresolvableID() ID {
	return ID{unresolvable: true}
}

// Resolvable reports whether the ID carries a usable integer value.
func (id ID) Resolvable() bool { return !id.unresolvable }

// Value returns the integer value of a resolvable ID, or 0 otherwise.
func (id ID) Value() int {
	if id.unresolvable {
		return 0
	}
	return id.n
}

// Matches reports whether the ID resolves to n.
func (id ID) Matches(n int) bool {
	return !id.unresolvable && id.n == n
}

func (id ID) String() string {
	if id.unresolvable {
		return "?"
	}
	return strconv.Itoa(id.n)
}

// Identity is a resolved reference to a student, holding either a numeric
// ID or a validated name, never both.
type Identity struct {
	id     ID
	name   Name
	byName bool
}

// IdentityOfID returns an identity referring to a student by numeric id.
func IdentityOfID(id ID) Identity {
	return Identity{id: id}
}

// IdentityOfName returns an identity referring to a student by name.
func IdentityOfName(name Name) Identity {
	return Identity{name: name, byName: true}
}

// ByName reports whether the identity refers to a student by name.
func (i Identity) ByName() bool { return i.byName }

// Name returns the name of a name-based identity and whether one is set.
func (i Identity) Name() (Name, bool) {
	return i.name, i.byName
}

// ID returns the id of an id-based identity and whether one is set.
func (i Identity) ID() (ID, bool) {
	if i.byName {
		return ID{}, false
	}
	return i.id, true
}

func (i Identity) String() string {
	if i.byName {
		return i.name.String()
	}
	return i.id.String()
}
