// File: exec.go
// Title: Exec Command
// Description: Runs a single command line against the engine and prints
//              the feedback, for scripting and quick edits without the
//              interactive shell.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec COMMAND...",
	Short: "Execute a single command and exit",
	Example: `  tutorbase exec "student list"
  tutorbase exec student add n/John Doe p/98765432 e/johnd@example.com a/Clementi Ave 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(false)
		if err != nil {
			printError("starting engine", err)
			return err
		}
		defer app.Close()

		result, err := app.engine.Execute(strings.Join(args, " "))
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		fmt.Println(result.Feedback)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
