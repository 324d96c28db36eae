// Package errors provides sentinel errors and error types for the chess arbiter.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move absent from the current legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInconsistentState indicates a broken board invariant, such as a
	// missing king. It only arises from misuse of the API.
	ErrInconsistentState = errors.New("inconsistent game state")

	// ErrInvalidSquare indicates a malformed square or coordinate move.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates no stored game has the requested ID.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps a rejected move with game context. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	GameID string // Stored game ID (if known)
	PlyNum int    // Ply the move would have been (1-based, 0 if not applicable)
	Move   string // The move in coordinate form
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// StateError reports a violated board invariant for one colour.
type StateError struct {
	Err    error  // The underlying error, normally ErrInconsistentState
	Colour string // The colour whose invariant failed
	Detail string // What was wrong, e.g. "no king on board"
}

// Error returns a formatted error message.
func (e *StateError) Error() string {
	var parts []string
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if len(parts) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "state error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It re-exports the standard library function so callers need only one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
