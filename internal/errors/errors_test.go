package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var sentinels = map[string]error{
	"ErrIllegalMove":       ErrIllegalMove,
	"ErrGameOver":          ErrGameOver,
	"ErrInconsistentState": ErrInconsistentState,
	"ErrInvalidSquare":     ErrInvalidSquare,
	"ErrInvalidConfig":     ErrInvalidConfig,
	"ErrGameNotFound":      ErrGameNotFound,
}

// Each sentinel matches itself through a wrap and no other sentinel.
func TestSentinelErrors(t *testing.T) {
	for name, err := range sentinels {
		t.Run(name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", err)
			for other, target := range sentinels {
				want := other == name
				if got := errors.Is(wrapped, target); got != want {
					t.Errorf("errors.Is(wrapped %s, %s) = %v, want %v", name, other, got, want)
				}
			}
			if err.Error() == "" {
				t.Errorf("%s has an empty message", name)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				GameID: "abc",
				PlyNum: 12,
				Move:   "e1g1",
			},
			contains: []string{"game abc", "ply 12", "e1g1", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, PlyNum: 3, Move: "a1a8"}
	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.PlyNum != 3 {
		t.Errorf("extracted.PlyNum = %d, want 3", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestStateError(t *testing.T) {
	err := &StateError{Err: ErrInconsistentState, Colour: "White", Detail: "no king on board"}

	if !Is(err, ErrInconsistentState) {
		t.Error("Is(StateError, ErrInconsistentState) = false, want true")
	}
	msg := err.Error()
	for _, s := range []string{"inconsistent", "White", "no king"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("StateError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrGameNotFound, "loading game")

	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading game") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of game %s", 15, "x")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
