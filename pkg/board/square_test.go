package board_test

import (
	"testing"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "8", board.Rank8.String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "h", board.FileH.String())
}

func TestSquare(t *testing.T) {
	assert.Equal(t, board.A1, board.Square(0))
	assert.Equal(t, board.H8, board.Square(63))
	assert.Equal(t, board.E1, board.Square(4))
	assert.Equal(t, board.E2, board.Square(12))

	assert.Equal(t, board.C2, board.NewSquare(board.FileC, board.Rank2))
	assert.Equal(t, board.G5, board.NewSquare(board.FileG, board.Rank5))

	assert.True(t, board.H1.IsValid())
	assert.False(t, board.Square(64).IsValid())

	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, "h8", board.H8.String())
	assert.Equal(t, "e4", board.E4.String())
}

// Round-trip: every square survives a file/rank decompose-and-rebuild.
func TestSquareRoundTrip(t *testing.T) {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		assert.Equal(t, sq, board.NewSquare(sq.File(), sq.Rank()))
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.E4, sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 2, board.AbsDiff(board.E1, board.G1))
	assert.Equal(t, 2, board.AbsDiff(board.G1, board.E1))
	assert.Equal(t, 0, board.AbsDiff(board.E1, board.E1))
}
