package search_test

import (
	"context"
	"testing"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/relentlesscoder/negabit/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChooseMoveFindsForcedMate sets up a back-rank mate one ply from
// completion: Black to move plays Ra2-a1#, trapping the White king behind
// its own pawns with no escape, block, or capture available.
func TestChooseMoveFindsForcedMate(t *testing.T) {
	sentinel := board.Move{From: board.A8, To: board.A8, Kind: board.KingMove}
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.H1, Color: board.White, Kind: board.King},
		{Square: board.F2, Color: board.White, Kind: board.Pawn},
		{Square: board.G2, Color: board.White, Kind: board.Pawn},
		{Square: board.H2, Color: board.White, Kind: board.Pawn},
		{Square: board.A8, Color: board.Black, Kind: board.King},
		{Square: board.A2, Color: board.Black, Kind: board.Rook},
	}, 0, sentinel)
	require.NoError(t, err)

	mv, ok := search.ChooseMove(context.Background(), pos, board.Black)
	require.True(t, ok)
	assert.Equal(t, board.Move{From: board.A2, To: board.A1, Kind: board.RookMove}, mv)

	pos.Apply(mv)
	assert.Empty(t, pos.Moves(board.White))
	assert.True(t, pos.AttacksOf(board.Black)&pos.PieceSetOf(board.White).King != 0)
}
