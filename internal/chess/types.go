// Package chess provides the core chess data model: colours, pieces, squares,
// board cells, moves and castling rights.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index the colour's king and rooks start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index the colour's pawns start on.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the opponent's back rank, where this colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the conventional material value of a piece. Kings are worth 0.
func (p Piece) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// Cell is the occupant of a single square: empty, or a coloured piece.
type Cell int

const (
	// Empty is an unoccupied square.
	Empty Cell = 0
	// OffBoard is returned for reads outside the 8x8 grid.
	OffBoard Cell = -1
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeCell creates a cell holding a piece of the given colour.
func MakeCell(colour Colour, piece Piece) Cell {
	if piece == NoPiece {
		return Empty
	}
	return Cell((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Cell {
	return MakeCell(White, piece)
}

// B creates a black piece.
func B(piece Piece) Cell {
	return MakeCell(Black, piece)
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// IsPiece reports whether the cell holds a piece (it is neither empty nor off the board).
func (c Cell) IsPiece() bool {
	return c > Empty
}

// Colour extracts the colour from a coloured piece.
func (c Cell) Colour() Colour {
	return Colour(c & 0x01)
}

// Piece extracts the piece type from a coloured piece.
func (c Cell) Piece() Piece {
	if !c.IsPiece() {
		return NoPiece
	}
	return Piece(c >> PieceShift)
}

// Is reports whether the cell holds the given piece of the given colour.
func (c Cell) Is(colour Colour, piece Piece) bool {
	return c.IsPiece() && c == MakeCell(colour, piece)
}

// String returns a readable name such as "White Knight".
func (c Cell) String() string {
	switch {
	case c == Empty:
		return "Empty"
	case c == OffBoard:
		return "Off"
	default:
		return c.Colour().String() + " " + c.Piece().String()
	}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8
