// File: shell.go
// Title: Shell Command
// Description: Starts the interactive shell.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/tutorbase/internal/tui/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(true)
		if err != nil {
			printError("starting shell", err)
			return err
		}
		defer app.Close()
		return shell.Run(app.engine)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
