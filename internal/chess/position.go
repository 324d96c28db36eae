package chess

// SideRights holds one colour's remaining castling rights.
type SideRights struct {
	Kingside  bool
	Queenside bool
}

// CastlingRights holds both colours' castling rights, indexed by Colour.
// Rights can only be revoked, never granted back.
type CastlingRights [2]SideRights

// FullCastlingRights returns the rights at the start of a standard game.
func FullCastlingRights() CastlingRights {
	return CastlingRights{
		Black: {Kingside: true, Queenside: true},
		White: {Kingside: true, Queenside: true},
	}
}

// Has reports whether colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	if kingside {
		return cr[colour].Kingside
	}
	return cr[colour].Queenside
}

// Revoke removes both rights for colour.
func (cr *CastlingRights) Revoke(colour Colour) {
	cr[colour] = SideRights{}
}

// RevokeSide removes one side's right for colour.
func (cr *CastlingRights) RevokeSide(colour Colour, kingside bool) {
	if kingside {
		cr[colour].Kingside = false
	} else {
		cr[colour].Queenside = false
	}
}

// String returns the rights in "KQkq" form, or "-" when none remain.
func (cr CastlingRights) String() string {
	var s []byte
	if cr[White].Kingside {
		s = append(s, 'K')
	}
	if cr[White].Queenside {
		s = append(s, 'Q')
	}
	if cr[Black].Kingside {
		s = append(s, 'k')
	}
	if cr[Black].Queenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// Position is everything move generation needs: the board, the side to
// move, castling rights and the en passant target.
type Position struct {
	Board    *Board
	ToMove   Colour
	Castling CastlingRights

	// Is an en passant capture possible? If so then EPSquare is the square
	// the double-stepping pawn passed over.
	EnPassant bool
	EPSquare  Square
}

// NewInitialPosition returns the standard starting position with White to move.
func NewInitialPosition() *Position {
	return &Position{
		Board:    NewInitialBoard(),
		ToMove:   White,
		Castling: FullCastlingRights(),
	}
}

// EnPassantTarget returns the en passant square if one is set.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// SetEnPassant sets the en passant target square.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = Square{}
}

// Copy creates a deep copy of the position, including its board.
func (p *Position) Copy() *Position {
	np := *p
	np.Board = p.Board.Copy()
	return &np
}
