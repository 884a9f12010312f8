// File: main.go
// Title: tutorbase Entry Point
// Description: Binary entry point delegating to the cobra command tree.

package main

import (
	"os"

	"github.com/msto63/tutorbase/cmd/tutorbase/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
