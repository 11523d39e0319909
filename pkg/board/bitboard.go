package board

import (
	"math/bits"
	"strings"

	"github.com/relentlesscoder/negabit/internal/bit"
)

// Bitboard is a bit-wise representation of the chess board. Each bit represents
// the occupancy of some piece on that square: bit 0 = A1, bit 63 = H8, in the
// little-endian rank-file layout described by Square.
type Bitboard uint64

const (
	EmptyBitboard Bitboard = 0
	FullBitboard  Bitboard = ^Bitboard(0)
)

func (b Bitboard) IsSet(sq Square) bool {
	return b&BitMask(sq) != 0
}

// PopCount returns the population count of the bitboard, i.e., number of 1s.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LastPopSquare returns the index of the least-significant 1. Returns 64 if zero.
func (b Bitboard) LastPopSquare() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares returns the set squares of the bitboard, in ascending order.
func (b Bitboard) Squares() []Square {
	var ret []Square
	it := bit.NewIter(uint64(b))
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		ret = append(ret, Square(bit.Square(x)))
	}
	return ret
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			if b.IsSet(NewSquare(f, Rank(r))) {
				sb.WriteRune('X')
			} else {
				sb.WriteRune('-')
			}
		}
		if r != int(Rank1) {
			sb.WriteRune('/')
		}
	}
	return sb.String()
}

// BitMask returns a bitboard with the given square populated.
func BitMask(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// BitRank returns a bitboard for the given rank.
func BitRank(r Rank) Bitboard {
	return Bitboard(0xff) << (Square(r) << 3)
}

// BitFile returns a bitboard for the given file.
func BitFile(f File) Bitboard {
	return Bitboard(0x0101010101010101) << Square(f)
}

// not{A,H}File mask out the wrap-around file when shifting diagonally or
// horizontally, so a piece on the edge never "reappears" on the other side.
const (
	notAFile = ^Bitboard(0x0101010101010101)
	notHFile = ^Bitboard(0x8080808080808080)
)

// ShiftNorth/South/East/West/NE/NW/SE/SW move every set bit one square in the
// given compass direction, clearing bits that would wrap around a board edge.
// These are the one-step primitives that floodRay and PinsOf's ray walk
// repeatedly apply.
func ShiftNorth(b Bitboard) Bitboard { return b << 8 }
func ShiftSouth(b Bitboard) Bitboard { return b >> 8 }
func ShiftEast(b Bitboard) Bitboard  { return (b &^ BitFile(FileH)) << 1 }
func ShiftWest(b Bitboard) Bitboard  { return (b &^ BitFile(FileA)) >> 1 }
func ShiftNE(b Bitboard) Bitboard    { return (b &^ BitFile(FileH)) << 9 }
func ShiftNW(b Bitboard) Bitboard    { return (b &^ BitFile(FileA)) << 7 }
func ShiftSE(b Bitboard) Bitboard    { return (b &^ BitFile(FileH)) >> 7 }
func ShiftSW(b Bitboard) Bitboard    { return (b &^ BitFile(FileA)) >> 9 }

// rayDirections lists the 8 one-step shift functions, used to build the
// king's one-step neighbourhood table.
var rayDirections = [8]func(Bitboard) Bitboard{
	ShiftNorth, ShiftSouth, ShiftEast, ShiftWest,
	ShiftNE, ShiftNW, ShiftSE, ShiftSW,
}

// diagonalDirections and orthogonalDirections split the 8 rays by piece type,
// used by RookAttacks/BishopAttacks/QueenAttacks.
var (
	orthogonalDirections = [4]func(Bitboard) Bitboard{ShiftNorth, ShiftSouth, ShiftEast, ShiftWest}
	diagonalDirections   = [4]func(Bitboard) Bitboard{ShiftNE, ShiftNW, ShiftSE, ShiftSW}
)

// floodRay walks a single ray direction from sq, one step at a time, including
// the first blocker square (so a slider can capture it) but no further. blockers
// is the full-board occupancy mask.
func floodRay(sq Square, dir func(Bitboard) Bitboard, blockers Bitboard) Bitboard {
	var ret Bitboard
	cur := BitMask(sq)
	for i := 0; i < 7; i++ {
		cur = dir(cur)
		if cur == EmptyBitboard {
			break
		}
		ret |= cur
		if cur&blockers != 0 {
			break
		}
	}
	return ret
}

// PawnCaptureboard returns all potential pawn captures for the given color.
func PawnCaptureboard(c Color, pawns Bitboard) Bitboard {
	if c == White {
		return ShiftNE(pawns) | ShiftNW(pawns)
	}
	return ShiftSE(pawns) | ShiftSW(pawns)
}

// PawnMoveboard returns all potential pawn single-step moves for the given color.
func PawnMoveboard(all Bitboard, c Color, pawns Bitboard) Bitboard {
	if c == White {
		return ShiftNorth(pawns) &^ all
	}
	return ShiftSouth(pawns) &^ all
}

// PawnPromotionRank returns the mask of the promotion rank for the given color, i.e.,
// Rank8 for White or Rank1 for Black.
func PawnPromotionRank(c Color) Bitboard {
	if c == White {
		return BitRank(Rank8)
	}
	return BitRank(Rank1)
}

// PawnJumpRank returns the mask of the target rank for jump moves for the given color,
// i.e., Rank4 for White or Rank5 for Black.
func PawnJumpRank(c Color) Bitboard {
	if c == White {
		return BitRank(Rank4)
	}
	return BitRank(Rank5)
}

// PawnHomeRank returns the rank pawns of the given color start the game on.
func PawnHomeRank(c Color) Bitboard {
	if c == White {
		return BitRank(Rank2)
	}
	return BitRank(Rank7)
}

// KingAttackboard returns all potential moves/attacks for a King at the given square.
func KingAttackboard(sq Square) Bitboard {
	return king[sq]
}

var king [NumSquares]Bitboard

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		m := BitMask(sq)
		var tmp Bitboard
		for _, dir := range rayDirections {
			tmp |= dir(m)
		}
		king[sq] = tmp
	}
}

// KnightAttackboard returns all potential moves/attacks for a Knight at the given square.
func KnightAttackboard(sq Square) Bitboard {
	return knight[sq]
}

var knight [NumSquares]Bitboard

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		m := BitMask(sq)
		one := ShiftEast(m) | ShiftWest(m)
		two := ((m &^ (BitFile(FileG) | BitFile(FileH))) << 2) | ((m &^ (BitFile(FileA) | BitFile(FileB))) >> 2)
		knight[sq] = ShiftNorth(ShiftNorth(one)) | ShiftSouth(ShiftSouth(one)) | ShiftNorth(two) | ShiftSouth(two)
	}
}

// RookAttacks returns all sliding moves/attacks for a Rook at sq, given the
// full-board occupancy of blockers, by flooding the 4 orthogonal rays.
func RookAttacks(sq Square, blockers Bitboard) Bitboard {
	var ret Bitboard
	for _, dir := range orthogonalDirections {
		ret |= floodRay(sq, dir, blockers)
	}
	return ret
}

// BishopAttacks returns all sliding moves/attacks for a Bishop at sq, given the
// full-board occupancy of blockers, by flooding the 4 diagonal rays.
func BishopAttacks(sq Square, blockers Bitboard) Bitboard {
	var ret Bitboard
	for _, dir := range diagonalDirections {
		ret |= floodRay(sq, dir, blockers)
	}
	return ret
}

// QueenAttacks returns all sliding moves/attacks for a Queen at sq. Convenience function.
func QueenAttacks(sq Square, blockers Bitboard) Bitboard {
	return RookAttacks(sq, blockers) | BishopAttacks(sq, blockers)
}
