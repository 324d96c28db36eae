package engine

import "github.com/lgbarn/chess-arbiter/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once, since a pawn always becomes a queen.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		MakeMove(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}
