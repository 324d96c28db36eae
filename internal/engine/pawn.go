package engine

import "github.com/lgbarn/chess-arbiter/internal/chess"

// pawnMoves generates pawn pushes, double steps, diagonal captures and en
// passant captures. Promotion is not a separate candidate.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	board := pos.Board
	dir := colour.PawnDirection()
	var moves []chess.Move

	// Forward move
	if one, ok := from.Offset(0, dir); ok && board.IsEmpty(one) {
		moves = append(moves, chess.Move{From: from, To: one})

		// Double push from starting rank
		if from.Rank == colour.PawnStartRank() {
			if two, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Special: chess.DoublePawn})
			}
		}
	}

	// Captures
	for _, df := range pawnCaptureFile {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if board.IsEnemy(to, colour) {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true})
		}
	}

	// En passant
	if ep, ok := pos.EnPassantTarget(); ok {
		for _, df := range pawnCaptureFile {
			to, ok := from.Offset(df, dir)
			if !ok || to != ep {
				continue
			}
			if board.Get(EnPassantVictim(to, colour)).Is(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{From: from, To: to, Capture: true, Special: chess.EnPassant})
			}
		}
	}

	return moves
}

// EnPassantVictim returns the square of the pawn removed when a pawn of
// colour captures en passant onto to: one rank behind the destination.
func EnPassantVictim(to chess.Square, colour chess.Colour) chess.Square {
	return chess.Sq(to.File, to.Rank-colour.PawnDirection())
}

// EnPassantCapturePossible reports whether the side to move has a pawn that
// can legally capture on the current en passant target right now.
func EnPassantCapturePossible(pos *chess.Position) bool {
	ep, ok := pos.EnPassantTarget()
	if !ok {
		return false
	}
	colour := pos.ToMove
	pawn := chess.MakeCell(colour, chess.Pawn)
	for _, df := range pawnCaptureFile {
		from, ok := ep.Offset(df, -colour.PawnDirection())
		if !ok || pos.Board.Get(from) != pawn {
			continue
		}
		for _, m := range GenerateMoves(pos, from, true) {
			if m.IsEnPassant() {
				return true
			}
		}
	}
	return false
}
