package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tebeka/atexit"
)

// Process exit codes
const (
	exitConfig   = 1
	exitOutput   = 2
	exitMismatch = 3
)

var (
	colorError   = color.New(color.FgRed, color.Bold)
	colorSuccess = color.New(color.FgGreen)
	colorPath    = color.New(color.FgHiBlue)
)

// Prints the error to stderr and exits running the registered exit handlers
func fail(code int, format string, args ...any) {
	colorError.Fprint(os.Stderr, "error: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	atexit.Exit(code)
}
