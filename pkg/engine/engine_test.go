package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/relentlesscoder/negabit/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtInitialPosition(t *testing.T) {
	e := engine.New()
	assert.Equal(t, board.NewInitial(), e.Position())
	assert.Equal(t, board.White, e.Turn())
}

func TestApplyCoordinatesAppliesLegalMove(t *testing.T) {
	e := engine.New()
	err := e.ApplyCoordinates(context.Background(), board.E2, board.E4, board.NoPiece)
	require.NoError(t, err)
	assert.Equal(t, board.Black, e.Turn())

	mv, ok := e.LastMove().V()
	require.True(t, ok)
	assert.Equal(t, board.E2, mv.From)
	assert.Equal(t, board.E4, mv.To)
}

func TestApplyCoordinatesRejectsIllegalMove(t *testing.T) {
	e := engine.New()
	err := e.ApplyCoordinates(context.Background(), board.E2, board.E5, board.NoPiece)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrIllegalMove))
	assert.Equal(t, board.White, e.Turn(), "rejected move must not change the side to move")
}

func TestChooseAndApplyReturnsErrNoMoveOnCheckmate(t *testing.T) {
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

	e := engine.NewFromPosition(pos, board.White)
	_, err = e.ChooseAndApply(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrNoMove))
}
