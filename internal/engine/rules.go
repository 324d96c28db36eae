package engine

import (
	"github.com/lgbarn/chess-arbiter/internal/chess"
)

// HasInsufficientMaterial returns true if the position is drawn for lack of
// mating material under this engine's simplified rule. Minor pieces are
// counted across both colours, and the draw applies only when no pawn, rook
// or queen remains and the minors are one of:
// - none
// - exactly one knight
// - exactly one bishop
// - exactly two bishops on same-coloured squares
//
// Every other combination, including two knights or opposite-coloured
// bishops, is treated as sufficient. This is not the FIDE classification.
func HasInsufficientMaterial(board *chess.Board) bool {
	var bishopSquareColours []int
	knights := 0

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			switch board.Get(sq).Piece() {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight:
				knights++
			case chess.Bishop:
				bishopSquareColours = append(bishopSquareColours, sq.Colour())
			}
		}
	}

	bishops := len(bishopSquareColours)
	switch {
	case knights == 0 && bishops == 0:
		return true
	case knights == 1 && bishops == 0:
		return true
	case knights == 0 && bishops == 1:
		return true
	case knights == 0 && bishops == 2:
		return bishopSquareColours[0] == bishopSquareColours[1]
	}
	return false
}
