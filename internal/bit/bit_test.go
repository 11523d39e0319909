package bit_test

import (
	"testing"

	"github.com/relentlesscoder/negabit/internal/bit"
	"github.com/stretchr/testify/assert"
)

func TestIterExhaustsAllBits(t *testing.T) {
	x := uint64(0b10000001000100101101011)

	var got []uint64
	it := bit.NewIter(x)
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, b)
	}

	var rebuilt uint64
	for _, b := range got {
		assert.Equal(t, 1, bit.PopCount(b), "each yielded mask must be a single bit")
		rebuilt |= b
	}
	assert.Equal(t, x, rebuilt)
	assert.Equal(t, bit.PopCount(x), len(got))
}

func TestIterEmpty(t *testing.T) {
	it := bit.NewIter(0)
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestSquare(t *testing.T) {
	assert.Equal(t, 0, bit.Square(1))
	assert.Equal(t, 3, bit.Square(1<<3))
	assert.Equal(t, 63, bit.Square(1<<63))
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, bit.PopCount(0))
	assert.Equal(t, 64, bit.PopCount(^uint64(0)))
}
