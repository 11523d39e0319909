package search_test

import (
	"context"
	"testing"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/relentlesscoder/negabit/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChooseMoveIsDeterministic runs the same search repeatedly. Since root
// moves are evaluated concurrently, this exercises that the winner is picked
// by stable move order and value, never by which goroutine happened to
// finish first.
func TestChooseMoveIsDeterministic(t *testing.T) {
	pos := board.NewInitial()

	first, ok := search.ChooseMove(context.Background(), pos, board.White)
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		mv, ok := search.ChooseMove(context.Background(), pos, board.White)
		require.True(t, ok)
		assert.Equal(t, first, mv)
	}
}

func TestChooseMoveWithNoLegalMoveReturnsFalse(t *testing.T) {
	sentinel := board.Move{From: board.A8, To: board.A8, Kind: board.KingMove}
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.H1, Color: board.White, Kind: board.King},
		{Square: board.F2, Color: board.White, Kind: board.Pawn},
		{Square: board.G2, Color: board.White, Kind: board.Pawn},
		{Square: board.H2, Color: board.White, Kind: board.Pawn},
		{Square: board.A8, Color: board.Black, Kind: board.King},
		{Square: board.A1, Color: board.Black, Kind: board.Rook},
	}, 0, sentinel)
	require.NoError(t, err)

	_, ok := search.ChooseMove(context.Background(), pos, board.White)
	assert.False(t, ok)
}
