package game

import "github.com/lgbarn/chess-arbiter/internal/chess"

// Snapshot is an immutable copy of a game's state. Nothing in it aliases
// the live game.
type Snapshot struct {
	Position        *chess.Position
	State           State
	Status          Status
	CapturedByWhite []chess.Piece
	CapturedByBlack []chess.Piece
	Ply             int
	LastMove        *chess.Move
	History         []chess.Move
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Position:        g.pos.Copy(),
		State:           g.State(),
		Status:          g.Status(),
		CapturedByWhite: g.Captured(chess.White),
		CapturedByBlack: g.Captured(chess.Black),
		Ply:             g.Ply(),
		History:         g.History(),
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		snap.LastMove = &last
	}
	return snap
}

// Captured returns the pieces captured by colour in the snapshot.
func (s Snapshot) Captured(colour chess.Colour) []chess.Piece {
	if colour == chess.White {
		return s.CapturedByWhite
	}
	return s.CapturedByBlack
}

// MaterialAdvantage returns each side's lead in captured material.
func (s Snapshot) MaterialAdvantage() (white, black int) {
	return advantage(s.CapturedByWhite, s.CapturedByBlack)
}
