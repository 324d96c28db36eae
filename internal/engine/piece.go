package engine

import "github.com/lgbarn/chess-arbiter/internal/chess"

// stepMoves generates single-step moves (knight and king) onto empty or
// enemy-occupied squares.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if board.IsEmpty(to) || board.IsEnemy(to, colour) {
			moves = append(moves, chess.Move{From: from, To: to, Capture: !board.IsEmpty(to)})
		}
	}
	return moves
}

// slidingMoves casts a ray along each direction until blocked. A blocking
// enemy piece yields one final capturing move; a friendly one yields none.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			if board.IsEmpty(to) {
				moves = append(moves, chess.Move{From: from, To: to})
			} else {
				if board.IsEnemy(to, colour) {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break // Blocked
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
