// File: doc.go
// Title: Commands Package Documentation
// Description: Package overview for the executable command objects.

// Package commands defines one immutable command type per leaf command of
// the tutorbase surface. Each command holds only the inputs needed for one
// mutation and implements Execute against the model, returning a Result
// with a user-facing feedback string and an optional navigation hint.
//
// Commands validate every domain condition before the first mutation, so
// a failing command leaves the model untouched. Domain failures are
// reported as CommandError values with stable, entity-specific messages.
package commands
