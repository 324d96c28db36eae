// Package output renders game snapshots as text boards or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/game"
)

// Glyphs indexed by piece type; index 0 is the empty square.
var (
	whiteGlyphs = []rune{'·', '♔', '♕', '♖', '♗', '♘', '♙'}
	blackGlyphs = []rune{'·', '♚', '♛', '♜', '♝', '♞', '♟'}
)

// glyphIndex maps a piece to its position in the glyph tables.
func glyphIndex(p chess.Piece) int {
	switch p {
	case chess.King:
		return 1
	case chess.Queen:
		return 2
	case chess.Rook:
		return 3
	case chess.Bishop:
		return 4
	case chess.Knight:
		return 5
	case chess.Pawn:
		return 6
	}
	return 0
}

// CellText returns the one-character rendering of a cell: a piece letter
// (upper case White) or '.', or the matching chess glyph when unicode is set.
func CellText(cell chess.Cell, unicode bool) string {
	if unicode {
		if !cell.IsPiece() {
			return string(whiteGlyphs[0])
		}
		if cell.Colour() == chess.White {
			return string(whiteGlyphs[glyphIndex(cell.Piece())])
		}
		return string(blackGlyphs[glyphIndex(cell.Piece())])
	}
	if !cell.IsPiece() {
		return "."
	}
	letter := cell.Piece().Letter()
	if cell.Colour() == chess.Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// RenderBoard draws the board with rank 8 at the top. Destinations of the
// highlight moves are marked '*' when quiet and 'x' when capturing.
func RenderBoard(w io.Writer, board *chess.Board, opts *config.OutputConfig, highlight []chess.Move) error {
	marks := make(map[chess.Square]string, len(highlight))
	for _, m := range highlight {
		if m.Capture {
			marks[m.To] = "x"
		} else {
			marks[m.To] = "*"
		}
	}

	var sb strings.Builder
	if opts.Coordinates {
		sb.WriteString("  +-----------------+\n")
	}
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%d | ", rank+1)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			text, ok := marks[sq]
			if !ok {
				text = CellText(board.Get(sq), opts.Unicode)
			}
			sb.WriteString(text)
			if file < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		if opts.Coordinates {
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString("  +-----------------+\n")
		sb.WriteString("    a b c d e f g h\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// DescribeTerminal returns the end-of-game message for t.
func DescribeTerminal(t *game.Terminal) string {
	if t == nil {
		return ""
	}
	switch t.Reason {
	case game.Checkmate:
		return fmt.Sprintf("Checkmate. %s wins.", t.Winner)
	case game.Stalemate:
		return "Draw by stalemate."
	case game.Repetition:
		return "Draw by threefold repetition."
	case game.InsufficientMaterial:
		return "Draw by insufficient material."
	}
	return "Game over."
}

// DescribeStatus returns a one-line summary of whose turn it is, or how the
// game ended.
func DescribeStatus(st game.Status) string {
	if st.GameOver {
		return DescribeTerminal(st.Terminal)
	}
	if st.InCheck {
		return fmt.Sprintf("%s to move, in check.", st.Turn)
	}
	return fmt.Sprintf("%s to move.", st.Turn)
}

// pieceList renders captured piece types as letters, e.g. "P N".
func pieceList(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = string(p.Letter())
	}
	return strings.Join(parts, " ")
}
