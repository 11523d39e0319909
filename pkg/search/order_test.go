package search_test

import (
	"context"
	"testing"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/relentlesscoder/negabit/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderMoves is unexported, so exercise it indirectly through ChooseMove's
// effect on a position where the capturing move is unambiguously correct:
// a free rook capture should always be chosen over quiet king shuffles.
func TestChooseMovePrefersFreeCapture(t *testing.T) {
	sentinel := board.Move{From: board.E8, To: board.E8, Kind: board.KingMove}
	pos, err := board.NewPosition([]board.Placement{
		{Square: board.A1, Color: board.White, Kind: board.King},
		{Square: board.D4, Color: board.White, Kind: board.Rook},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.D7, Color: board.Black, Kind: board.Rook},
	}, 0, sentinel)
	require.NoError(t, err)

	mv, ok := search.ChooseMove(context.Background(), pos, board.White)
	require.True(t, ok)
	assert.Equal(t, board.D7, mv.To, "should capture the undefended rook")
}
