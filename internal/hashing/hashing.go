// Package hashing builds position keys and counts how often each key has
// occurred in a game, for threefold repetition.
package hashing

import (
	"strings"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/engine"
)

// Key identifies a position for repetition purposes. Two positions share a
// key when they have the same occupancy, side to move, castling rights and
// en passant capture opportunity.
type Key string

// PositionKey returns the key of pos. The en passant square is part of the
// key only when a capture onto it is legally possible for the side to move;
// a target nobody can use does not make the position different.
func PositionKey(pos *chess.Position) Key {
	var sb strings.Builder
	sb.Grow(chess.BoardSize*chess.BoardSize + 12)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(cellChar(pos.Board.Get(chess.Sq(file, rank))))
		}
	}

	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())

	sb.WriteByte(' ')
	if engine.EnPassantCapturePossible(pos) {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
	return Key(sb.String())
}

// cellChar returns the piece letter for cell, upper case for White and
// lower case for Black, or '.' for an empty square.
func cellChar(cell chess.Cell) byte {
	if !cell.IsPiece() {
		return '.'
	}
	letter := cell.Piece().Letter()
	if cell.Colour() == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// RepetitionTable counts occurrences of position keys.
type RepetitionTable struct {
	counts map[Key]int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[Key]int)}
}

// Record increments the count for key and returns the new count.
func (t *RepetitionTable) Record(key Key) int {
	t.counts[key]++
	return t.counts[key]
}

// Count returns how many times key has been recorded.
func (t *RepetitionTable) Count(key Key) int {
	return t.counts[key]
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[Key]int)
}

