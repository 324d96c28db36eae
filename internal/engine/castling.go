package engine

import "github.com/lgbarn/chess-arbiter/internal/chess"

// Castling geometry by file index.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
	kingsideKingTo    = 6
	kingsideRookTo    = 5
	queensideKingTo   = 2
	queensideRookTo   = 3
)

type castleSide struct {
	kingside bool
	special  chess.Special
	rookFrom int
	rookTo   int
	kingTo   int
	between  []int // must be empty
	transit  []int // must not be attacked, destination included
}

var castleSides = []castleSide{
	{
		kingside: true,
		special:  chess.CastleKingside,
		rookFrom: kingsideRookFile,
		rookTo:   kingsideRookTo,
		kingTo:   kingsideKingTo,
		between:  []int{5, 6},
		transit:  []int{5, 6},
	},
	{
		kingside: false,
		special:  chess.CastleQueenside,
		rookFrom: queensideRookFile,
		rookTo:   queensideRookTo,
		kingTo:   queensideKingTo,
		between:  []int{1, 2, 3},
		transit:  []int{3, 2},
	},
}

// castlingMoves returns the castling candidates for the king on from.
func castlingMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	home := colour.HomeRank()
	if from != chess.Sq(kingFile, home) {
		return nil
	}
	board := pos.Board
	enemy := colour.Opposite()

	var moves []chess.Move
	inCheck := false
	checked := false
	for _, side := range castleSides {
		if !pos.Castling.Has(colour, side.kingside) {
			continue
		}
		if !board.Get(chess.Sq(side.rookFrom, home)).Is(colour, chess.Rook) {
			continue
		}
		if !allEmpty(board, home, side.between) {
			continue
		}
		if !checked {
			inCheck = IsSquareAttacked(board, from, enemy)
			checked = true
		}
		if inCheck {
			return nil
		}
		if anyAttacked(board, home, side.transit, enemy) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: chess.Sq(side.kingTo, home), Special: side.special})
	}
	return moves
}

// castleRookMove returns the rook's origin and destination for a castling move.
func castleRookMove(move chess.Move) (from, to chess.Square) {
	for _, side := range castleSides {
		if side.special == move.Special {
			return chess.Sq(side.rookFrom, move.From.Rank), chess.Sq(side.rookTo, move.From.Rank)
		}
	}
	return move.From, move.From
}

// revokeCastlingRights removes rights lost by move. It must run before the
// destination square is overwritten so a captured corner rook is seen.
func revokeCastlingRights(pos *chess.Position, move chess.Move) {
	mover := pos.Board.Get(move.From)
	colour := mover.Colour()

	switch mover.Piece() {
	case chess.King:
		pos.Castling.Revoke(colour)
	case chess.Rook:
		revokeCornerRight(&pos.Castling, colour, move.From)
	}

	captured := pos.Board.Get(move.To)
	if captured.Is(colour.Opposite(), chess.Rook) {
		revokeCornerRight(&pos.Castling, colour.Opposite(), move.To)
	}
}

// revokeCornerRight removes the right tied to colour's rook corner at sq, if sq is one.
func revokeCornerRight(cr *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	if sq.Rank != colour.HomeRank() {
		return
	}
	switch sq.File {
	case kingsideRookFile:
		cr.RevokeSide(colour, true)
	case queensideRookFile:
		cr.RevokeSide(colour, false)
	}
}

func allEmpty(board *chess.Board, rank int, files []int) bool {
	for _, f := range files {
		if !board.IsEmpty(chess.Sq(f, rank)) {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, rank int, files []int, by chess.Colour) bool {
	for _, f := range files {
		if IsSquareAttacked(board, chess.Sq(f, rank), by) {
			return true
		}
	}
	return false
}
