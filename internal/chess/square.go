package chess

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter/internal/errors"
)

// Square identifies a board square by 0-based file (a=0) and rank (1=0).
type Square struct {
	File int
	Rank int
}

// Sq returns the square at the given file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by (df, dr). The bool is false when the
// result falls off the board; offsets never wrap.
func (s Square) Offset(df, dr int) (Square, bool) {
	to := Square{File: s.File + df, Rank: s.Rank + dr}
	return to, to.Valid()
}

// Colour returns (file+rank) mod 2, the square-colour class used for bishop comparisons.
func (s Square) Colour() int {
	return (s.File + s.Rank) % 2
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts a name such as "e4" into a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file := name[0]
	rank := name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
