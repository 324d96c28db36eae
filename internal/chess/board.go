package chess

// Board is an 8x8 grid of cells indexed [file][rank]. It carries no game state.
type Board struct {
	Squares [BoardSize][BoardSize]Cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Cell{}
}

// Get returns the cell at sq, or OffBoard when sq is outside the grid.
func (b *Board) Get(sq Square) Cell {
	if !sq.Valid() {
		return OffBoard
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a cell at sq. Writes outside the grid are ignored.
func (b *Board) Set(sq Square, cell Cell) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = cell
	}
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// IsEnemy reports whether sq holds a piece of the colour opposing colour.
func (b *Board) IsEnemy(sq Square, colour Colour) bool {
	c := b.Get(sq)
	return c.IsPiece() && c.Colour() != colour
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeCell(colour, King)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given colour and type are on the board.
func (b *Board) Count(colour Colour, piece Piece) int {
	want := MakeCell(colour, piece)
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank] == want {
				n++
			}
		}
	}
	return n
}

// ForEach calls fn for every occupied square, rank 1 first, file a first.
func (b *Board) ForEach(fn func(sq Square, cell Cell)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if cell := b.Squares[file][rank]; cell != Empty {
				fn(Square{File: file, Rank: rank}, cell)
			}
		}
	}
}
