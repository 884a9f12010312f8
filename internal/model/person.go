// File: person.go
// Title: Student Entity and Field Value Types
// Description: Defines the Person entity, its validated field value types
//              (Name, Phone, Email, Address, Memo), and the PersonPatch
//              applied by edit commands.

package model

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Canonical constraint messages. These are part of the stable user-facing
// surface and are asserted by tests; do not reword casually.
const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
	AddressConstraints = "Addresses can take any values, and it should not be blank"
)

var (
	nameRegexp  = regexp.MustCompile(`^[[:alnum:]][[:alnum:] ]*$`)
	phoneRegexp = regexp.MustCompile(`^[0-9]{3,}$`)
	emailRegexp = regexp.MustCompile(`^[[:alnum:]]+([+_.-][[:alnum:]]+)*@([[:alnum:]]+(-[[:alnum:]]+)*\.)*[[:alnum:]]+(-[[:alnum:]]+)*$`)
)

// Name is a student's full name.
type Name string

// IsValidName reports whether s is a valid name: alphanumeric characters
// and single spaces, not blank.
func IsValidName(s string) bool {
	return nameRegexp.MatchString(s)
}

func (n Name) String() string { return string(n) }

// Phone is a student's phone number.
type Phone string

// IsValidPhone reports whether s is a valid phone number: digits only,
// at least 3 of them.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

func (p Phone) String() string { return string(p) }

// Email is a student's email address.
type Email string

// IsValidEmail reports whether s is a valid email of the form
// local-part@domain as described by EmailConstraints.
func IsValidEmail(s string) bool {
	if !emailRegexp.MatchString(s) {
		return false
	}
	// The last domain label must be at least 2 characters long.
	at := strings.LastIndex(s, "@")
	domain := s[at+1:]
	labels := strings.Split(domain, ".")
	return len(labels[len(labels)-1]) >= 2
}

func (e Email) String() string { return string(e) }

// Address is a student's home address. Any non-blank value is valid.
type Address string

// IsValidAddress reports whether s is a valid address.
func IsValidAddress(s string) bool {
	return strings.TrimSpace(s) != ""
}

func (a Address) String() string { return string(a) }

// Memo is a free-form note attached to a student. Any value is valid; the
// empty memo means "no memo".
type Memo string

func (m Memo) String() string { return string(m) }

// Person represents a student tracked by tutorbase. The ID is assigned by
// the address book on insertion and is stable for the entity's lifetime.
type Person struct {
	ID      int
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Memo    Memo
	Tags    []Tag // sorted, unique; see NewTagSet
}

// IsSamePerson reports whether p and other refer to the same student.
// Two students are the same when their names are equal; this is the
// identity equality rule used for duplicate detection.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name == other.Name
}

// Equal reports full field equality between two persons.
func (p Person) Equal(other Person) bool {
	return p.ID == other.ID &&
		p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		p.Memo == other.Memo &&
		slices.Equal(p.Tags, other.Tags)
}

func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if p.Memo != "" {
		fmt.Fprintf(&b, "; Memo: %s", p.Memo)
	}
	if len(p.Tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range p.Tags {
			fmt.Fprintf(&b, "[%s]", t)
		}
	}
	return b.String()
}

// PersonPatch describes a partial edit of a person. Nil fields are left
// unchanged when the patch is applied. A non-nil Tags slice, including an
// empty one, replaces the full tag set.
type PersonPatch struct {
	Name    *Name
	Phone   *Phone
	Email   *Email
	Address *Address
	Memo    *Memo
	Tags    []Tag
}

// Any reports whether the patch changes at least one field.
func (pp PersonPatch) Any() bool {
	return pp.Name != nil || pp.Phone != nil || pp.Email != nil ||
		pp.Address != nil || pp.Memo != nil || pp.Tags != nil
}

// Apply returns a copy of base with the patch applied. The base person is
// not modified.
func (pp PersonPatch) Apply(base Person) Person {
	edited := base
	if pp.Name != nil {
		edited.Name = *pp.Name
	}
	if pp.Phone != nil {
		edited.Phone = *pp.Phone
	}
	if pp.Email != nil {
		edited.Email = *pp.Email
	}
	if pp.Address != nil {
		edited.Address = *pp.Address
	}
	if pp.Memo != nil {
		edited.Memo = *pp.Memo
	}
	if pp.Tags != nil {
		edited.Tags = NewTagSet(pp.Tags...)
	} else {
		edited.Tags = slices.Clone(base.Tags)
	}
	return edited
}
