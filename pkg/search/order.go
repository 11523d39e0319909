package search

import (
	"sort"

	"github.com/relentlesscoder/negabit/pkg/board"
)

// orderMoves sorts moves in place, most promising first. The heuristic is
// the nominal value of whatever is captured minus a penalty for landing the
// moving piece on a square the opponent already attacks, the mover's own
// value weighted by 9/8. It only shapes search order for faster alpha-beta
// cutoffs; it never affects which moves are legal or returned.
func orderMoves(pos board.Position, c board.Color, moves []board.Move) {
	otherAttack := pos.AttacksOf(c.Opponent())

	priority := func(mv board.Move) Score {
		var gain Score
		if _, k, ok := pos.PieceAt(mv.To); ok {
			gain = nominalValue(k)
		} else if mv.Kind == board.PawnEnPassant {
			gain = nominalValue(board.Pawn)
		}

		var risk Score
		if otherAttack.IsSet(mv.To) {
			if _, k, ok := pos.PieceAt(mv.From); ok {
				risk = nominalValue(k) * 9 / 8
			}
		}
		return gain - risk
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return priority(moves[i]) > priority(moves[j])
	})
}
