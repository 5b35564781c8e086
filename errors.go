package todo

import "errors"

var (
	// ErrIO is returned when the storage directory or one of its files
	// cannot be created, opened, read or written.
	ErrIO = errors.New("storage i/o error")

	// ErrDataCorruption is returned when stored bytes cannot be decoded.
	ErrDataCorruption = errors.New("stored data is corrupt")

	// ErrSerialization is returned when tasks cannot be encoded.
	ErrSerialization = errors.New("failed to serialize tasks")

	// ErrNotFound is returned by Done when no pending task has the given ID.
	ErrNotFound = errors.New("no todo found with given ID")

	// ErrCounterExhausted is returned when the ID counter cannot be advanced.
	ErrCounterExhausted = errors.New("todo id counter exhausted")

	// ErrInvalidFilter is returned for a list filter other than pending,
	// completed or all.
	ErrInvalidFilter = errors.New("invalid list filter")
)
