package engine

import "github.com/lgbarn/chess-arbiter/internal/chess"

// LeavesKingInCheck simulates move on a copy of board and reports whether
// the mover's king is attacked afterwards.
func LeavesKingInCheck(board *chess.Board, move chess.Move) bool {
	colour := board.Get(move.From).Colour()
	testBoard := Simulate(board, move)
	return IsInCheck(testBoard, colour)
}

// FilterLegal returns the moves that do not leave the mover's king attacked.
// Each candidate is tried on its own throwaway copy of board.
func FilterLegal(board *chess.Board, moves []chess.Move) []chess.Move {
	legal := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if !LeavesKingInCheck(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			piece := pos.Board.Get(sq)
			if !piece.IsPiece() || piece.Colour() != colour {
				continue
			}
			for _, m := range PseudoLegalMoves(pos, sq) {
				if !LeavesKingInCheck(pos.Board, m) {
					return true
				}
			}
		}
	}
	return false
}

// CountLegalMoves returns the number of legal moves for the side to move.
func CountLegalMoves(pos *chess.Position) int {
	return len(AllLegalMoves(pos))
}

// IsLegal reports whether move (matched by origin and destination) is in the
// legal set for the side to move, returning the generated move with its flags.
func IsLegal(pos *chess.Position, move chess.Move) (chess.Move, bool) {
	for _, m := range LegalMoves(pos, move.From) {
		if m.SameSquares(move) {
			return m, true
		}
	}
	return chess.Move{}, false
}
