// Package engine is a thin façade binding a position and the side to move
// to the search package, adding the logging and error-wrapping convenience
// the CLI needs. It carries no opening book, transposition table, iterative
// deepening or protocol handling: those are explicit non-goals here.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/relentlesscoder/negabit/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Sentinel errors surfaced at the engine boundary. Use errors.Is to test for
// them; they are always wrapped with additional context via fmt.Errorf.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoMove       = errors.New("no legal move")
	ErrInvalidInput = errors.New("invalid input")
)

// Engine holds the current position and the color to move next. It is not
// safe for concurrent use by multiple goroutines.
type Engine struct {
	pos  board.Position
	turn board.Color
	last lang.Optional[board.Move]
}

// New returns an Engine initialized at the standard starting position.
func New() *Engine {
	return NewFromPosition(board.NewInitial(), board.White)
}

// NewFromPosition returns an Engine initialized at pos with turn to move.
// Exposed for tests and for any future resume-from-position front-end.
func NewFromPosition(pos board.Position, turn board.Color) *Engine {
	return &Engine{
		pos:  pos,
		turn: turn,
	}
}

// Name returns the engine name and version, for a startup banner.
func Name() string {
	return fmt.Sprintf("negabit %v", version)
}

// Position returns the current position.
func (e *Engine) Position() board.Position {
	return e.pos
}

// Turn returns the color to move.
func (e *Engine) Turn() board.Color {
	return e.turn
}

// LastMove returns the most recently applied move, if any.
func (e *Engine) LastMove() lang.Optional[board.Move] {
	return e.last
}

// ApplyCoordinates derives a move from a (from, to) coordinate pair for the
// side to move, overriding its promotion kind if promotion is not NoPiece,
// and applies it. It returns ErrIllegalMove, wrapped with the rejected
// coordinates, if no legal move matches.
func (e *Engine) ApplyCoordinates(ctx context.Context, from, to board.Square, promotion board.PieceKind) error {
	mv, ok := e.pos.DeriveMove(e.turn, from, to)
	if !ok {
		logw.Errorf(ctx, "Illegal move %v%v", from, to)
		return fmt.Errorf("%v%v: %w", from, to, ErrIllegalMove)
	}
	if promotion != board.NoPiece && mv.Kind.IsPromotion() {
		mv.Kind = promotionKind(promotion)
	}

	e.pos.Apply(mv)
	e.turn = e.turn.Opponent()
	e.last = lang.Some(mv)

	logw.Infof(ctx, "Applied %v: %v", mv, e.pos)
	return nil
}

// ChooseAndApply searches for the best move for the side to move, applies
// it, and returns it. It returns ErrNoMove if the side to move has none
// (stalemate or checkmate).
func (e *Engine) ChooseAndApply(ctx context.Context) (board.Move, error) {
	mv, ok := search.ChooseMove(ctx, e.pos, e.turn)
	if !ok {
		logw.Infof(ctx, "No legal move for %v", e.turn)
		return board.Move{}, fmt.Errorf("%v to move: %w", e.turn, ErrNoMove)
	}

	e.pos.Apply(mv)
	e.turn = e.turn.Opponent()
	e.last = lang.Some(mv)

	logw.Infof(ctx, "Chose %v: %v", mv, e.pos)
	return mv, nil
}

// promotionKind maps a promotion piece kind to the matching MoveKind.
func promotionKind(p board.PieceKind) board.MoveKind {
	switch p {
	case board.Rook:
		return board.PawnRookPromotion
	case board.Bishop:
		return board.PawnBishopPromotion
	case board.Knight:
		return board.PawnKnightPromotion
	default:
		return board.PawnQueenPromotion
	}
}
