package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/emberhq/ember/internal/logger"
)

// Engine error taxonomy. Callers match with errors.Is; the storage layer maps
// unique-constraint conflicts onto these at its boundary.
var (
	ErrAlreadyCompletedToday = errors.New("habit already completed today")
	ErrHabitNotFound         = errors.New("habit not found")
	ErrQuestNotFound         = errors.New("quest not found")
	ErrQuestNotReadyToClaim  = errors.New("quest is not ready to claim")
	ErrInvalidInput          = errors.New("invalid input")
)

// PersistenceError wraps a failed storage round trip. It is fatal to the
// operation that hit it; callers are expected to retry idempotently.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError, or returns nil for a nil err.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// Is re-exports errors.Is so call sites only need this package.
func Is(err, target error) bool { return errors.Is(err, target) }

// As re-exports errors.As.
func As(err error, target any) bool { return errors.As(err, target) }

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
