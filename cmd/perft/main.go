// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/relentlesscoder/negabit/pkg/board"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	flag.Parse()

	pos := board.NewInitial()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(pos, board.White, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,initial,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
}

// perft counts the leaf positions depth plies below pos with turn to move.
// Unlike the reference implementation, Moves already returns only legal
// moves, so there is no separate legality filter on each branch.
func perft(pos board.Position, turn board.Color, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.Moves(turn) {
		next := pos
		next.Apply(m)

		count := perft(next, turn.Opponent(), depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
