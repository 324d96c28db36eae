package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-arbiter/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if got := b.Get(Sq(file, rank)); got != Empty {
					t.Errorf("Get(%v) = %v; want Empty", Sq(file, rank), got)
				}
			}
		}
	})

	t.Run("off-board reads", func(t *testing.T) {
		for _, sq := range []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 3), Sq(3, 8)} {
			if got := b.Get(sq); got != OffBoard {
				t.Errorf("Get(%+v) = %v; want OffBoard", sq, got)
			}
		}
	})

	t.Run("off-board writes ignored", func(t *testing.T) {
		before := *b
		b.Set(Sq(8, 8), W(Queen))
		if *b != before {
			t.Error("Set off the board modified the board")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name string
		sq   string
		want Cell
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook a8", "a8", B(Rook)},
		{"empty e3", "e3", Empty},
		{"empty d4", "d4", Empty},
		{"empty c6", "c6", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(MustParseSquare(tt.sq)); got != tt.want {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.want)
			}
		})
	}

	for _, colour := range []Colour{White, Black} {
		if n := b.Count(colour, King); n != 1 {
			t.Errorf("Count(%v, King) = %d; want 1", colour, n)
		}
		if n := b.Count(colour, Pawn); n != 8 {
			t.Errorf("Count(%v, Pawn) = %d; want 8", colour, n)
		}
	}
}

func TestBoardCopyIsDeep(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()
	c.Set(MustParseSquare("e2"), Empty)
	c.Set(MustParseSquare("e4"), W(Pawn))

	if b.Get(MustParseSquare("e2")) != W(Pawn) {
		t.Error("mutating the copy changed the original e2")
	}
	if !b.IsEmpty(MustParseSquare("e4")) {
		t.Error("mutating the copy changed the original e4")
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()
	sq, ok := b.FindKing(Black)
	if !ok || sq != MustParseSquare("e8") {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	b.Set(MustParseSquare("e1"), Empty)
	if _, ok := b.FindKing(White); ok {
		t.Error("FindKing(White) on a board without a white king = true; want false")
	}
}

func TestCellEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for p := Pawn; p <= King; p++ {
			c := MakeCell(colour, p)
			if !c.IsPiece() {
				t.Errorf("MakeCell(%v, %v).IsPiece() = false", colour, p)
			}
			if c.Colour() != colour || c.Piece() != p {
				t.Errorf("MakeCell(%v, %v) decodes to %v %v", colour, p, c.Colour(), c.Piece())
			}
		}
	}
	if MakeCell(White, NoPiece) != Empty {
		t.Error("MakeCell(White, NoPiece) != Empty")
	}
	if Empty.Piece() != NoPiece || OffBoard.Piece() != NoPiece {
		t.Error("Empty and OffBoard must decode to NoPiece")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"h8", Sq(7, 7), false},
		{"E4", Sq(4, 3), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a", Square{}, true},
		{"", Square{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSquareOffsetNeverWraps(t *testing.T) {
	if _, ok := MustParseSquare("h4").Offset(1, 0); ok {
		t.Error("h4 + (1,0) reported on-board")
	}
	if _, ok := MustParseSquare("a1").Offset(-1, 2); ok {
		t.Error("a1 + (-1,2) reported on-board")
	}
	if to, ok := MustParseSquare("g1").Offset(-1, 2); !ok || to.String() != "f3" {
		t.Errorf("g1 + (-1,2) = %v, %v; want f3, true", to, ok)
	}
}

func TestCastlingRights(t *testing.T) {
	cr := FullCastlingRights()
	if got := cr.String(); got != "KQkq" {
		t.Errorf("FullCastlingRights().String() = %q, want KQkq", got)
	}
	cr.RevokeSide(White, false)
	cr.Revoke(Black)
	if got := cr.String(); got != "K" {
		t.Errorf("after revocations String() = %q, want K", got)
	}
	if cr.Has(White, false) || !cr.Has(White, true) {
		t.Error("Has() does not reflect revoked queenside right")
	}
	cr.Revoke(White)
	if got := cr.String(); got != "-" {
		t.Errorf("no rights String() = %q, want -", got)
	}
}

func TestParseCoordinate(t *testing.T) {
	m, err := ParseCoordinate("e2e4")
	if err != nil {
		t.Fatalf("ParseCoordinate(e2e4) error: %v", err)
	}
	if m.From != MustParseSquare("e2") || m.To != MustParseSquare("e4") {
		t.Errorf("ParseCoordinate(e2e4) = %+v", m)
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", m.String())
	}
	for _, bad := range []string{"e2e", "e2e9", "z2e4", "e2-e4"} {
		if _, err := ParseCoordinate(bad); err == nil {
			t.Errorf("ParseCoordinate(%q) = nil error, want error", bad)
		}
	}
}

func TestPositionCopy(t *testing.T) {
	p := NewInitialPosition()
	p.SetEnPassant(MustParseSquare("e3"))
	c := p.Copy()
	c.Board.Set(MustParseSquare("e2"), Empty)
	c.ClearEnPassant()
	c.Castling.Revoke(White)

	if p.Board.IsEmpty(MustParseSquare("e2")) {
		t.Error("Copy shares the board with the original")
	}
	if sq, ok := p.EnPassantTarget(); !ok || sq.String() != "e3" {
		t.Errorf("original EnPassantTarget() = %v, %v; want e3, true", sq, ok)
	}
	if !p.Castling.Has(White, true) {
		t.Error("Copy shares castling rights with the original")
	}
}
