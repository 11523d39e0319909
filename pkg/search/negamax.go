package search

import "github.com/relentlesscoder/negabit/pkg/board"

// negamax is a fail-hard alpha-beta search of pos to depth plies, from color
// c's perspective. alpha and beta bound the window; after searching moves the
// return value is clamped to [alpha, beta], but a checkmate (MinScore), a
// stalemate (0) and the value quiescence returns at depth 0 are passed back
// as they are.
func negamax(pos board.Position, c board.Color, depth int, alpha, beta Score) Score {
	if depth == 0 {
		return quiescence(pos, c, pos.PrevMove().To, alpha, beta)
	}

	moves := pos.Moves(c)
	if len(moves) == 0 {
		if pos.IsChecked(c) {
			return MinScore
		}
		return 0
	}
	orderMoves(pos, c, moves)

	for _, mv := range moves {
		child := pos
		child.Apply(mv)

		value := -negamax(child, c.Opponent(), depth-1, -beta, -alpha)
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// quiescence extends the search beyond the horizon by resolving captures
// that recapture onto target, the square the previous move landed on. A
// position with no such recapture is evaluated statically, unless the side
// to move is in check and has none, in which case it is treated as lost:
// standing pat while in check with no reply is not a safe approximation.
// There is no stand-pat baseline when a recapture exists: this quiescence
// is restricted to the single recapture square, not a general capture
// search, so it always resolves the recapture rather than cutting off on
// the static eval alone.
func quiescence(pos board.Position, c board.Color, target board.Square, alpha, beta Score) Score {
	var recaptures []board.Move
	for _, mv := range pos.Captures(c) {
		if mv.To == target {
			recaptures = append(recaptures, mv)
		}
	}
	if len(recaptures) == 0 {
		if pos.IsChecked(c) {
			return MinScore
		}
		return Evaluate(pos, c)
	}
	orderMoves(pos, c, recaptures)

	for _, mv := range recaptures {
		child := pos
		child.Apply(mv)

		value := -quiescence(child, c.Opponent(), mv.To, -beta, -alpha)
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}
