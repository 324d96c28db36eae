package game

import "github.com/lgbarn/chess-arbiter/internal/chess"

// State is the game's position in its move cycle.
type State int

const (
	WhiteToMove State = iota
	BlackToMove
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case WhiteToMove:
		return "WhiteToMove"
	case BlackToMove:
		return "BlackToMove"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Reason says why a game ended.
type Reason int

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition
	InsufficientMaterial
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Repetition:
		return "Repetition"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	}
	return "None"
}

// Terminal describes a finished game. Winner is meaningful only for
// Checkmate; every other reason is a draw.
type Terminal struct {
	Reason Reason
	Winner chess.Colour
}

// IsDraw reports whether the game ended without a winner.
func (t Terminal) IsDraw() bool {
	return t.Reason != Checkmate
}

// Result returns the conventional result string: "1-0", "0-1" or "1/2-1/2".
func (t Terminal) Result() string {
	if t.IsDraw() {
		return "1/2-1/2"
	}
	if t.Winner == chess.White {
		return "1-0"
	}
	return "0-1"
}

// Status is the summary a presentation layer needs after every move.
type Status struct {
	Turn     chess.Colour
	InCheck  bool
	GameOver bool
	Terminal *Terminal // nil while the game is in progress
}
