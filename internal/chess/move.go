package chess

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter/internal/errors"
)

// Special marks moves that need more than relocating one piece.
type Special int

const (
	NoSpecial Special = iota
	DoublePawn
	EnPassant
	CastleKingside
	CastleQueenside
)

// String returns the string representation of a special marker.
func (s Special) String() string {
	names := []string{"", "double-pawn", "en-passant", "castle-kingside", "castle-queenside"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Move is a candidate or committed move. Promotion is not a field: a pawn
// reaching the back rank always becomes a queen when the move is applied.
type Move struct {
	From    Square
	To      Square
	Capture bool
	Special Special
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Special {
	case CastleKingside, CastleQueenside:
		return true
	default:
		return false
	}
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Special == EnPassant
}

// SameSquares reports whether two moves share origin and destination.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseCoordinate parses a coordinate move such as "e2e4" into its squares.
// The returned move carries no flags; match it against generated moves.
func ParseCoordinate(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("coordinate move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, fmt.Errorf("coordinate move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, fmt.Errorf("coordinate move %q: %w", text, err)
	}
	return Move{From: from, To: to}, nil
}
