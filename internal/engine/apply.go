package engine

import (
	"github.com/lgbarn/chess-arbiter/internal/chess"
)

// MoveResult describes the effects of MakeMove.
type MoveResult struct {
	// The piece type that moved.
	Mover chess.Piece

	// The piece type captured (NoPiece if no capture).
	Captured chess.Piece

	// Whether a pawn reached the back rank and became a queen.
	Promoted bool
}

// MakeMove applies a move to the position in place and switches the side to
// move. The move must come from LegalMoves for the current side; anything
// else leaves the position in an unspecified state.
//
// Effects are applied in this order: castling rights, en passant target,
// piece placement, promotion, side to move.
func MakeMove(pos *chess.Position, move chess.Move) MoveResult {
	mover := pos.Board.Get(move.From)
	colour := mover.Colour()

	revokeCastlingRights(pos, move)

	pos.ClearEnPassant()
	if move.Special == chess.DoublePawn {
		pos.SetEnPassant(chess.Sq(move.From.File, move.From.Rank+colour.PawnDirection()))
	}

	captured := placePieces(pos.Board, move)

	result := MoveResult{Mover: mover.Piece(), Captured: captured.Piece()}

	// Handle promotion
	if mover.Piece() == chess.Pawn && move.To.Rank == colour.PromotionRank() {
		pos.Board.Set(move.To, chess.MakeCell(colour, chess.Queen))
		result.Promoted = true
	}

	pos.ToMove = colour.Opposite()
	return result
}

// Simulate returns a copy of board with move's positional effect applied.
// The input board is never modified.
func Simulate(board *chess.Board, move chess.Move) *chess.Board {
	nb := board.Copy()
	placePieces(nb, move)
	return nb
}

// placePieces relocates the pieces a move touches and returns the captured
// occupant (Empty if none). En passant removes the pawn one rank behind the
// destination; castling also relocates the rook.
func placePieces(board *chess.Board, move chess.Move) chess.Cell {
	piece := board.Get(move.From)
	captured := chess.Empty

	switch {
	case move.IsEnPassant():
		victim := EnPassantVictim(move.To, piece.Colour())
		captured = board.Get(victim)
		board.Set(victim, chess.Empty)

	case move.IsCastle():
		rookFrom, rookTo := castleRookMove(move)
		rook := board.Get(rookFrom)
		board.Set(rookFrom, chess.Empty)
		board.Set(rookTo, rook)

	default:
		captured = board.Get(move.To)
	}

	board.Set(move.From, chess.Empty)
	board.Set(move.To, piece)
	return captured
}
