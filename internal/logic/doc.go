// File: doc.go
// Title: Logic Package Documentation
// Description: Package overview for the command execution engine.

// Package logic is the execution engine behind the command line: it
// parses raw input into command objects, executes them against the
// in-memory model, persists the model after successful mutations, and
// logs every command with a correlation id.
//
// The engine is single-threaded by contract. Callers issue one command
// at a time; no internal locking is performed.
package logic
