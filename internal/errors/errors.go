package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/quotewiz/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix.
// Joined errors (errors.Join) are listed one per line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if len(errs) > 1 {
			var b strings.Builder
			fmt.Fprintf(&b, "Error: %d problems:", len(errs))
			for _, e := range errs {
				fmt.Fprintf(&b, "\n  - %v", e)
			}
			return b.String()
		}
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
