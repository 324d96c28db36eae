package game

import "github.com/lgbarn/chess-arbiter/internal/errors"

// Replay builds a game by applying a log of coordinate moves from the
// standard starting position. It stops at the first move that cannot be
// applied and returns the error with that move's ply.
func Replay(moves []string) (*Game, error) {
	g := New()
	for _, text := range moves {
		if _, err := g.ApplyCoordinate(text); err != nil {
			return nil, errors.Wrap(err, "replay")
		}
	}
	return g, nil
}

// MoveLog returns the game's moves in coordinate form, suitable for Replay.
func (g *Game) MoveLog() []string {
	out := make([]string, len(g.history))
	for i, m := range g.history {
		out[i] = m.String()
	}
	return out
}
