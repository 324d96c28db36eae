package engine

import "github.com/lgbarn/chess-arbiter/internal/chess"

// PseudoLegalMoves returns the moves the piece on from can make according
// to its movement pattern, without checking whether they expose its own king.
// It returns nil for an empty square.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	return GenerateMoves(pos, from, false)
}

// GenerateMoves produces candidate moves for the piece on from, dispatched
// by piece type. When considerCheck is set the candidates are passed through
// the legality filter before being returned.
func GenerateMoves(pos *chess.Position, from chess.Square, considerCheck bool) []chess.Move {
	piece := pos.Board.Get(from)
	if !piece.IsPiece() {
		return nil
	}
	colour := piece.Colour()

	var moves []chess.Move
	switch piece.Piece() {
	case chess.Pawn:
		moves = pawnMoves(pos, from, colour)
	case chess.Knight:
		moves = stepMoves(pos.Board, from, colour, knightOffsets)
	case chess.Bishop:
		moves = slidingMoves(pos.Board, from, colour, diagonalDirs)
	case chess.Rook:
		moves = slidingMoves(pos.Board, from, colour, straightDirs)
	case chess.Queen:
		moves = slidingMoves(pos.Board, from, colour, allSlidingDirs)
	case chess.King:
		moves = stepMoves(pos.Board, from, colour, kingOffsets)
		moves = append(moves, castlingMoves(pos, from, colour)...)
	}

	if !considerCheck {
		return moves
	}
	return FilterLegal(pos.Board, moves)
}

// LegalMoves returns the legal moves for the piece on from. Selecting an
// empty square or a piece of the side not to move yields no moves.
func LegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Board.Get(from)
	if !piece.IsPiece() || piece.Colour() != pos.ToMove {
		return nil
	}
	return GenerateMoves(pos, from, true)
}

// AllLegalMoves returns every legal move for the side to move, ordered by
// origin square (rank 1 first, file a first).
func AllLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	pos.Board.ForEach(func(sq chess.Square, cell chess.Cell) {
		if cell.Colour() == pos.ToMove {
			moves = append(moves, GenerateMoves(pos, sq, true)...)
		}
	})
	return moves
}
