// File: system.go
// Title: System Commands
// Description: Commands outside the student/session families: help, exit,
//              and clear.

package commands

import "github.com/msto63/tutorbase/internal/model"

// Usage strings for the system commands.
const (
	HelpUsage = "help: Shows program usage instructions." +
		"\nExample: help"

	ExitUsage = "exit: Exits the program." +
		"\nExample: exit"

	ClearUsage = "clear: Clears all tutorbase data." +
		"\nExample: clear"
)

// HelpMessage is the command overview shown by the help command.
const HelpMessage = "Available commands:" +
	"\n  student [add|list|search|view|edit|delete|restore|unassign]" +
	"\n  session [add|list|search|view|delete|enrol|unenrol|attendance-mark|attendance-unmark]" +
	"\n  clear, help, exit" +
	"\nRun a family word on its own for its subcommand overview."

// HelpCommand shows usage instructions.
type HelpCommand struct{}

// Execute implements Command.
func (c HelpCommand) Execute(m model.Model) (*Result, error) {
	return &Result{Feedback: HelpMessage, ShowHelp: true}, nil
}

// ExitCommand signals the presentation layer to terminate.
type ExitCommand struct{}

// Execute implements Command.
func (c ExitCommand) Execute(m model.Model) (*Result, error) {
	return &Result{Feedback: MessageExiting, Exit: true}, nil
}

// ClearCommand removes all data from the model.
type ClearCommand struct{}

// Execute implements Command.
func (c ClearCommand) Execute(m model.Model) (*Result, error) {
	m.Clear()
	return &Result{Feedback: MessageCleared}, nil
}
