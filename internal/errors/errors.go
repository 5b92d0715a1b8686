package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/nybbler/internal/logger"
)

// PersistenceError reports a failure to read, parse or write the save record.
type PersistenceError struct {
	Op   string // "load", "save", "init", "backup", "restore"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a *PersistenceError. A nil err stays nil.
func Persistence(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Path: path, Err: err}
}

// IsPersistence reports whether err (or anything it wraps) is a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return stderrors.As(err, &pe)
}

// InputError reports malformed interactive or command-line input.
// Callers recover by prompting again; it is never fatal on its own.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// Input builds an *InputError.
func Input(input, reason string) error {
	return &InputError{Input: input, Reason: reason}
}

// IsInput reports whether err (or anything it wraps) is an *InputError.
func IsInput(err error) bool {
	var ie *InputError
	return stderrors.As(err, &ie)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
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
