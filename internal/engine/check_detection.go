// Package engine implements the rules of chess over chess.Position values:
// attack detection, move generation, legality filtering, move application
// and terminal-condition tests. Every function is free of side effects on
// its inputs unless its documentation says otherwise.
package engine

import (
	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/errors"
)

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	pawnCaptureFile = []int{-1, 1}
)

// IsInCheck returns true if the given colour's king is attacked.
// It panics with an *errors.StateError if colour has no king.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, FindKing(board, colour), colour.Opposite())
}

// FindKing returns the square of colour's king. A board without that king
// violates a core invariant and can only be produced by bypassing the game
// API, so this panics with an *errors.StateError wrapping
// errors.ErrInconsistentState rather than returning an error.
func FindKing(board *chess.Board, colour chess.Colour) chess.Square {
	sq, ok := board.FindKing(colour)
	if !ok {
		panic(&errors.StateError{
			Err:    errors.ErrInconsistentState,
			Colour: colour.String(),
			Detail: "no king on board",
		})
	}
	return sq
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, relative to their own direction.
	pawn := chess.MakeCell(byColour, chess.Pawn)
	for _, df := range pawnCaptureFile {
		if from, ok := sq.Offset(df, -byColour.PawnDirection()); ok && board.Get(from) == pawn {
			return true
		}
	}

	knight := chess.MakeCell(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.Get(from) == knight {
			return true
		}
	}

	king := chess.MakeCell(byColour, chess.King)
	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.Get(from) == king {
			return true
		}
	}

	queen := chess.MakeCell(byColour, chess.Queen)
	if rayAttacked(board, sq, diagonalDirs, chess.MakeCell(byColour, chess.Bishop), queen) {
		return true
	}
	return rayAttacked(board, sq, straightDirs, chess.MakeCell(byColour, chess.Rook), queen)
}

// rayAttacked walks each direction from sq and reports whether the first
// occupied square holds one of the two given sliders.
func rayAttacked(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Cell) bool {
	for _, dir := range dirs {
		cur, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.Get(cur)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			cur, ok = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
