// Package game owns the authoritative state of a single chess game. It
// applies committed moves, keeps capture lists and the repetition table, and
// decides when the game is over.
//
// A Game is not safe for concurrent use; callers serialise queries and moves.
package game

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/engine"
	"github.com/lgbarn/chess-arbiter/internal/errors"
	"github.com/lgbarn/chess-arbiter/internal/hashing"
)

// Game is a chess game in progress or finished.
type Game struct {
	pos         *chess.Position
	captured    [2][]chess.Piece // indexed by the capturing colour
	repetitions *hashing.RepetitionTable
	history     []chess.Move
	terminal    *Terminal
}

// New returns a game at the standard starting position.
func New() *Game {
	g := &Game{}
	g.init(chess.NewInitialPosition())
	return g
}

// NewFromPosition returns a game starting from a copy of pos. Each colour
// must have exactly one king and the side not to move must not be in check.
// The position is evaluated immediately, so a
// position that is already mate or stalemate yields a finished game.
func NewFromPosition(pos *chess.Position) (*Game, error) {
	if pos == nil || pos.Board == nil {
		return nil, &errors.StateError{Err: errors.ErrInconsistentState, Detail: "no board"}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := pos.Board.Count(colour, chess.King); n != 1 {
			return nil, &errors.StateError{
				Err:    errors.ErrInconsistentState,
				Colour: colour.String(),
				Detail: fmt.Sprintf("%d kings on board", n),
			}
		}
	}
	if idle := pos.ToMove.Opposite(); engine.IsInCheck(pos.Board, idle) {
		return nil, &errors.StateError{
			Err:    errors.ErrInconsistentState,
			Colour: idle.String(),
			Detail: "side not to move is in check",
		}
	}
	g := &Game{}
	g.init(pos.Copy())
	g.evaluate()
	return g, nil
}

func (g *Game) init(pos *chess.Position) {
	g.pos = pos
	g.captured = [2][]chess.Piece{}
	g.history = nil
	g.terminal = nil
	if g.repetitions == nil {
		g.repetitions = hashing.NewRepetitionTable()
	} else {
		g.repetitions.Reset()
	}
	g.repetitions.Record(hashing.PositionKey(pos))
}

// Reset reinitialises the game to the standard starting position.
func (g *Game) Reset() Snapshot {
	g.init(chess.NewInitialPosition())
	return g.Snapshot()
}

// State returns WhiteToMove, BlackToMove or GameOver.
func (g *Game) State() State {
	switch {
	case g.terminal != nil:
		return GameOver
	case g.pos.ToMove == chess.White:
		return WhiteToMove
	default:
		return BlackToMove
	}
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.ToMove
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return len(g.history)
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// LegalMoves returns the legal moves for the piece on sq. An empty square,
// an opponent's piece or a finished game yields no moves.
func (g *Game) LegalMoves(sq chess.Square) []chess.Move {
	if g.terminal != nil {
		return nil
	}
	return engine.LegalMoves(g.pos, sq)
}

// AllLegalMoves returns every legal move for the side to move.
func (g *Game) AllLegalMoves() []chess.Move {
	if g.terminal != nil {
		return nil
	}
	return engine.AllLegalMoves(g.pos)
}

// ApplyMove commits move. The move is matched against the current legal
// set by origin and destination, and the generated move is the one applied.
// A rejected move returns a *errors.MoveError and leaves the game unchanged.
func (g *Game) ApplyMove(move chess.Move) (Snapshot, error) {
	if g.terminal != nil {
		return Snapshot{}, g.reject(move, errors.ErrGameOver)
	}
	legal, ok := engine.IsLegal(g.pos, move)
	if !ok {
		return Snapshot{}, g.reject(move, errors.ErrIllegalMove)
	}

	mover := g.pos.ToMove
	result := engine.MakeMove(g.pos, legal)
	if result.Captured != chess.NoPiece {
		g.captured[mover] = append(g.captured[mover], result.Captured)
	}
	g.history = append(g.history, legal)
	g.repetitions.Record(hashing.PositionKey(g.pos))
	g.evaluate()

	return g.Snapshot(), nil
}

// ApplyCoordinate parses a coordinate move such as "e2e4" and applies it.
func (g *Game) ApplyCoordinate(text string) (Snapshot, error) {
	move, err := chess.ParseCoordinate(text)
	if err != nil {
		return Snapshot{}, &errors.MoveError{Err: err, PlyNum: g.Ply() + 1, Move: text}
	}
	return g.ApplyMove(move)
}

func (g *Game) reject(move chess.Move, err error) error {
	return &errors.MoveError{Err: err, PlyNum: g.Ply() + 1, Move: move.String()}
}

// evaluate sets the terminal state for the side to move, checking in order:
// checkmate or stalemate, threefold repetition, insufficient material.
func (g *Game) evaluate() {
	colour := g.pos.ToMove
	if !engine.HasLegalMoves(g.pos, colour) {
		if engine.IsInCheck(g.pos.Board, colour) {
			g.terminal = &Terminal{Reason: Checkmate, Winner: colour.Opposite()}
		} else {
			g.terminal = &Terminal{Reason: Stalemate}
		}
		return
	}
	if g.repetitions.Count(hashing.PositionKey(g.pos)) == 3 {
		g.terminal = &Terminal{Reason: Repetition}
		return
	}
	if engine.HasInsufficientMaterial(g.pos.Board) {
		g.terminal = &Terminal{Reason: InsufficientMaterial}
	}
}

// Terminal returns how the game ended, or nil while it is in progress.
func (g *Game) Terminal() *Terminal {
	if g.terminal == nil {
		return nil
	}
	t := *g.terminal
	return &t
}

// Status returns the side to move, whether it is in check and how the game
// ended, if it has.
func (g *Game) Status() Status {
	return Status{
		Turn:     g.pos.ToMove,
		InCheck:  engine.IsInCheck(g.pos.Board, g.pos.ToMove),
		GameOver: g.terminal != nil,
		Terminal: g.Terminal(),
	}
}

// Captured returns the piece types captured by colour, in capture order.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	return append([]chess.Piece(nil), g.captured[colour]...)
}

// MaterialAdvantage returns each side's lead in captured material. At most
// one of the two values is non-zero.
func (g *Game) MaterialAdvantage() (white, black int) {
	return advantage(g.captured[chess.White], g.captured[chess.Black])
}

func advantage(byWhite, byBlack []chess.Piece) (white, black int) {
	diff := capturedValue(byWhite) - capturedValue(byBlack)
	if diff > 0 {
		return diff, 0
	}
	return 0, -diff
}

func capturedValue(pieces []chess.Piece) int {
	total := 0
	for _, p := range pieces {
		total += p.Value()
	}
	return total
}

// History returns the moves applied so far, in order.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// RepetitionCount returns how many times the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.repetitions.Count(hashing.PositionKey(g.pos))
}
