package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/relentlesscoder/negabit/pkg/board"
)

// Depth is the fixed root search depth, in plies. Iterative deepening and
// time management are out of scope: every call searches exactly this deep.
const Depth = 6

// ChooseMove returns the best move for color c in pos, or false if c has no
// legal move. Root moves are evaluated concurrently, one Board copy per
// goroutine, bounded to runtime.GOMAXPROCS(0) in flight at a time; results
// land in a preallocated, move-indexed slice so the winner is independent of
// goroutine completion order. ctx is accepted for symmetry with the engine
// boundary above this package but the recursive search itself is synchronous
// and does not observe cancellation.
func ChooseMove(ctx context.Context, pos board.Position, c board.Color) (board.Move, bool) {
	moves := pos.Moves(c)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	orderMoves(pos, c, moves)

	values := make([]Score, len(moves))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			child := pos
			child.Apply(mv)
			values[i] = -negamax(child, c.Opponent(), Depth-1, MinScore, MaxScore)
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	for i := 1; i < len(moves); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return moves[best], true
}
