// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	"github.com/fmizzell/todo"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown id, bad filter).
	UserError = 1

	// StorageError indicates the task files could not be accessed.
	StorageError = 2

	// DataError indicates the task files hold data that cannot be used.
	DataError = 3
)

// FromError maps an error returned by a command to an exit code
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, todo.ErrIO):
		return StorageError
	case errors.Is(err, todo.ErrDataCorruption),
		errors.Is(err, todo.ErrSerialization),
		errors.Is(err, todo.ErrCounterExhausted):
		return DataError
	default:
		return UserError
	}
}
