package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord marks a persisted line that cannot be decoded into a habit.
	ErrMalformedRecord = errors.New("malformed habit record")
	// ErrIOFailure marks a failed open, read or write of the backing store.
	ErrIOFailure = errors.New("habit storage i/o failure")
	// ErrInvalidSelection marks an out-of-range or non-numeric menu selection.
	ErrInvalidSelection = errors.New("invalid habit selection")
)

// MalformedRecordError describes a record with too few fields.
type MalformedRecordError struct {
	Line   int
	Raw    string
	Fields int
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: expected at least %d fields, got %d (%q)",
			e.Line, ErrMalformedRecord, MinRecordFields, e.Fields, e.Raw)
	}
	return fmt.Sprintf("%s: expected at least %d fields, got %d (%q)",
		ErrMalformedRecord, MinRecordFields, e.Fields, e.Raw)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// IOError wraps a storage failure with the operation and location involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrIOFailure in addition to the wrapped cause.
func (e *IOError) Is(target error) bool { return target == ErrIOFailure }

// NewIOError returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
