// File: root.go
// Title: Root Command
// Description: Root of the cobra command tree plus the shared bootstrap
//              that loads configuration, opens the store, and builds the
//              command engine.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tutorbase/internal/config"
	"github.com/msto63/tutorbase/internal/logging"
	"github.com/msto63/tutorbase/internal/logic"
	"github.com/msto63/tutorbase/internal/model"
	"github.com/msto63/tutorbase/internal/storage"
)

var (
	cfgFile  string
	inMemory bool
)

var rootCmd = &cobra.Command{
	Use:   "tutorbase",
	Short: "tutorbase - student and session manager for tutors",
	Long: `tutorbase manages a tutoring business from the command line:
students, tutoring sessions, enrollment, and attendance.

Run 'tutorbase shell' for the interactive shell, or
'tutorbase exec "student list"' for one-shot commands.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "in-memory", false, "run without persistence")
}

// appContext bundles everything a subcommand needs to run the engine.
type appContext struct {
	engine  *logic.Logic
	closers []io.Closer
}

// Close releases the store and log file handles.
func (a *appContext) Close() {
	for _, c := range a.closers {
		c.Close()
	}
}

// bootstrap loads the configuration, sets up logging, opens the store,
// loads the persisted model, and wires the engine. logToFile selects the
// shell's file logger over the console logger.
func bootstrap(logToFile bool) (*appContext, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	level := logging.ParseLevel(cfg.LogLevel)

	app := &appContext{}
	var logger *slog.Logger
	if logToFile {
		fileLogger, closer, err := logging.NewFileLogger(cfg.LogFile, level)
		if err != nil {
			return nil, err
		}
		logger = fileLogger
		app.closers = append(app.closers, closer)
	} else {
		logger = logging.NewConsoleLogger(os.Stderr, level)
	}

	book := model.NewAddressBook()
	var store logic.Store
	if !inMemory && cfg.DataPath != "" {
		sqlStore, err := storage.Open(cfg.DataPath)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("opening data store: %w", err)
		}
		app.closers = append(app.closers, sqlStore)
		if book, err = sqlStore.Load(); err != nil {
			app.Close()
			return nil, fmt.Errorf("loading data: %w", err)
		}
		store = sqlStore
	}

	app.engine = logic.New(book, store, logger)
	return app, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
