package cmd

import (
	"fmt"
	"os"

	"github.com/arquati/catimport/internal/output"
)

// printError prints a user-friendly error message and exits non-zero. Every
// error in this tool is a usage-style error; nothing is retried.
func printError(err error) {
	if err == nil {
		return
	}

	writer := output.NewWriter(output.DetectDefaultMode(os.Stderr), os.Stderr)
	writer.Error(fmt.Sprintf("Error: %s", err.Error()))
	os.Exit(1)
}
