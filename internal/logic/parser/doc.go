// File: doc.go
// Title: Parser Package Documentation
// Description: Package overview for the command parsing pipeline.

// Package parser turns raw command lines into executable command objects.
//
// The pipeline has three stages. Tokenize splits the argument text into an
// unprefixed preamble and a multimap from recognized flag prefixes to their
// ordered values. The field parsers validate and convert individual tokens
// into typed domain values, each with its canonical constraint message.
// Parse dispatches on the command word, routing compound families (student,
// session) through a nested switch on the second word, and assembles the
// typed command object or fails with a ParseError that embeds the usage
// string of the command being parsed.
package parser
