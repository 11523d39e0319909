package search

import "github.com/relentlesscoder/negabit/pkg/board"

// Score is a centipawn-scale evaluation from the perspective of the color
// being searched: positive favors that color, negative favors the opponent.
type Score int32

const (
	// MinScore and MaxScore bound the search window. They stand in for
	// checkmate in either direction and are never themselves reachable
	// by material evaluation, which is capped by the material on the board.
	MinScore Score = -1_000_000
	MaxScore Score = 1_000_000
)

// nominalValue is the material weight of one piece of kind k, in pawns. Kings
// are excluded from material evaluation: they are never captured, so they
// carry no material weight of their own.
func nominalValue(k board.PieceKind) Score {
	switch k {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// Evaluate returns the static material evaluation of pos from color c's
// perspective: 100 times the White-minus-Black material balance, negated
// when c is Black.
func Evaluate(pos board.Position, c board.Color) Score {
	white := pos.PieceSetOf(board.White)
	black := pos.PieceSetOf(board.Black)

	var balance Score
	for _, k := range []board.PieceKind{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen} {
		balance += Score(white.Get(k).PopCount()-black.Get(k).PopCount()) * nominalValue(k)
	}
	balance *= 100

	if c == board.Black {
		return -balance
	}
	return balance
}
