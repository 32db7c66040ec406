package errors

import (
	"errors"
	"fmt"
)

// Standard errors
var (
	// ErrInvalidInput is returned when the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSymmetryMismatch is returned when an experiment's Patterson group
	// differs from the target Patterson group
	ErrSymmetryMismatch = errors.New("patterson group mismatch")

	// ErrMissingColumn is returned when a reflection table column does not exist
	ErrMissingColumn = errors.New("missing column")

	// ErrColumnLength is returned when a column's length differs from the table row count
	ErrColumnLength = errors.New("column length does not match table size")

	// ErrColumnType is returned when a column is read as the wrong kind
	ErrColumnType = errors.New("unexpected column type")

	// ErrUnknownSpaceGroup is returned when a space group symbol cannot be resolved
	ErrUnknownSpaceGroup = errors.New("unknown space group")

	// ErrIncompatibleUnitCell is returned when a unit cell violates the
	// metric constraints of a space group's crystal system
	ErrIncompatibleUnitCell = errors.New("unit cell incompatible with space group")

	// ErrTableNotFound is returned when a stored reflection table does not exist
	ErrTableNotFound = errors.New("reflection table not found")
)

// SymmetryMismatchError reports the two canonical Patterson group identities
// that disagreed during the compatibility check.
type SymmetryMismatchError struct {
	// Target is the symbol and number of the target Patterson group
	Target string

	// Experiment is the symbol and number of the offending experiment's Patterson group
	Experiment string

	// ExperimentIndex is the position of the offending experiment in its list
	ExperimentIndex int
}

func (e *SymmetryMismatchError) Error() string {
	return fmt.Sprintf("target patterson group %s is different from an experiment patterson group %s (experiment %d)",
		e.Target, e.Experiment, e.ExperimentIndex)
}

// Unwrap lets errors.Is match ErrSymmetryMismatch.
func (e *SymmetryMismatchError) Unwrap() error {
	return ErrSymmetryMismatch
}

// MissingColumnError names a column that was expected in a reflection table.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// Wrap wraps an error with additional context
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience function that wraps errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if so, sets
// target to that error value and returns true. Otherwise, it returns false.
// This is a convenience function that wraps errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
