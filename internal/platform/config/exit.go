package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeFailure is the process status used for every fatal run error.
const ExitCodeFailure = 1

// Exitf writes a formatted error message to stderr and exits with
// ExitCodeFailure. It provides a consistent fatal-exit pattern for CLI
// entry points.
func Exitf(format string, args ...any) {
	exitf(os.Stderr, os.Exit, format, args...)
}

func exitf(w io.Writer, exit func(int), format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	exit(ExitCodeFailure)
}
