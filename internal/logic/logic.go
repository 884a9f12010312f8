// File: logic.go
// Title: Command Execution Engine
// Description: Parses raw command lines, executes the resulting command
//              against the model, and persists the model after every
//              successful mutating command.

package logic

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/tutorbase/internal/logic/commands"
	"github.com/msto63/tutorbase/internal/logic/parser"
	"github.com/msto63/tutorbase/internal/model"
)

// Store persists the model. A nil Store disables persistence, which the
// tests and the in-memory mode use.
type Store interface {
	Save(m model.Model) error
}

// Logic wires the parser, the model, and the store into the command
// engine the presentation layer talks to.
type Logic struct {
	model model.Model
	store Store
	log   *slog.Logger
}

// New returns an engine over the given model. store may be nil.
func New(m model.Model, store Store, log *slog.Logger) *Logic {
	if log == nil {
		log = slog.Default()
	}
	return &Logic{model: m, store: store, log: log}
}

// Model exposes the underlying model for the presentation layer's
// read-only rendering.
func (l *Logic) Model() model.Model {
	return l.model
}

// Execute runs one command line end to end. Parse and execution errors
// are returned to the caller for display; persistence failures after a
// successful mutation are logged and reported, but the in-memory change
// stands.
func (l *Logic) Execute(line string) (*commands.Result, error) {
	cmdID := uuid.NewString()
	start := time.Now()
	log := l.log.With("command_id", cmdID)
	log.Debug("executing command", "input", line)

	cmd, err := parser.Parse(line)
	if err != nil {
		log.Info("parse rejected", "error", err, "duration", time.Since(start))
		return nil, err
	}

	result, err := cmd.Execute(l.model)
	if err != nil {
		log.Info("command failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	if l.store != nil && isMutating(cmd) {
		if saveErr := l.store.Save(l.model); saveErr != nil {
			log.Error("persisting model failed", "error", saveErr)
			return result, saveErr
		}
	}

	log.Info("command succeeded", "feedback", result.Feedback, "duration", time.Since(start))
	return result, nil
}

// isMutating reports whether cmd changes model data that must be
// persisted. View-only commands, including the filter-installing search
// and list commands, are excluded.
func isMutating(cmd commands.Command) bool {
	switch cmd.(type) {
	case commands.AddStudentCommand,
		commands.EditStudentCommand,
		commands.DeleteStudentCommand,
		commands.RestoreStudentCommand,
		commands.UnassignCommand,
		commands.AddSessionCommand,
		commands.DeleteSessionCommand,
		commands.EnrolCommand,
		commands.UnenrolCommand,
		commands.AttendanceMarkCommand,
		commands.AttendanceUnmarkCommand,
		commands.ClearCommand:
		return true
	}
	return false
}
