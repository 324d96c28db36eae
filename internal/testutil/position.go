package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/chess-arbiter/internal/chess"
)

// pieceLetters maps diagram letters to piece types (upper case = White).
var pieceLetters = map[rune]chess.Piece{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// ParsePlacement builds a board from a piece-placement diagram in the usual
// rank-8-first notation, e.g. "4k3/8/8/8/8/8/8/4K3". Digits count empty squares.
func ParsePlacement(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("placement %q: want %d ranks, got %d", placement, chess.BoardSize, len(ranks))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceLetters[unicode.ToLower(c)]
				if !ok {
					return nil, fmt.Errorf("placement %q: invalid piece character %c", placement, c)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Sq(file, rank), chess.MakeCell(colour, piece))
				file++
			}
			if file > chess.BoardSize {
				return nil, fmt.Errorf("placement %q: rank %d overflows", placement, rank+1)
			}
		}
		if file != chess.BoardSize {
			return nil, fmt.Errorf("placement %q: rank %d has %d files", placement, rank+1, file)
		}
	}
	return board, nil
}

// MustPosition builds a fixture position with no castling rights and no en
// passant target. Tests adjust Castling or call SetEnPassant as needed.
func MustPosition(t testing.TB, placement string, toMove chess.Colour) *chess.Position {
	t.Helper()
	board, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	return &chess.Position{Board: board, ToMove: toMove}
}

// Placement renders a board back into diagram form. It is the inverse of
// ParsePlacement and lets tests feed positions to other move generators.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			cell := board.Get(chess.Sq(file, rank))
			if !cell.IsPiece() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := rune(cell.Piece().Letter())
			if cell.Colour() == chess.Black {
				letter = unicode.ToLower(letter)
			}
			sb.WriteRune(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// PositionString renders pos as a full six-field position record (placement,
// side, castling, en passant, clocks) for generators that accept that format.
func PositionString(pos *chess.Position) string {
	side := "w"
	if pos.ToMove == chess.Black {
		side = "b"
	}
	ep := "-"
	if sq, ok := pos.EnPassantTarget(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%s %s %s %s 0 1", Placement(pos.Board), side, pos.Castling.String(), ep)
}
