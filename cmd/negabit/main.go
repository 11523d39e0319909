// negabit is a terminal chess REPL over the board and search packages. It is
// thin I/O glue, not hard engine content: it prompts for a move, applies it,
// lets the engine reply, and prints the board, nothing more.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/seekerror/logw"

	"github.com/relentlesscoder/negabit/pkg/board"
	"github.com/relentlesscoder/negabit/pkg/engine"
)

// logLevel is reported in the startup log line; it does not change which
// lines logw emits.
var logLevel = flag.String("log-level", "info", "Log level (debug, info, warning, error)")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: negabit [options]

negabit is a simple negamax chess engine. Enter moves as two algebraic
squares separated by a space, e.g. "e2 e4". Enter "quit" to exit.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "%v, log-level=%v", engine.Name(), *logLevel)

	e := engine.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(engine.Name())
	printBoard(e.Position())

	for {
		if outcome, ok := checkOutcome(e); ok {
			fmt.Println(outcome)
			return
		}

		fmt.Printf("%v to move> ", e.Turn())
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return
		}

		from, to, err := parseInput(line)
		if err != nil {
			logw.Errorf(ctx, "Invalid input %q: %v", line, err)
			fmt.Printf("invalid input: %v\n", err)
			continue
		}

		promotion := board.NoPiece
		if mv, ok := e.Position().DeriveMove(e.Turn(), from, to); ok && mv.Kind.IsPromotion() {
			promotion, err = promptPromotion(scanner)
			if err != nil {
				logw.Errorf(ctx, "Invalid promotion: %v", err)
				fmt.Printf("invalid promotion: %v\n", err)
				continue
			}
		}

		if err := e.ApplyCoordinates(ctx, from, to, promotion); err != nil {
			fmt.Printf("rejected: %v\n", err)
			continue
		}
		printBoard(e.Position())

		if outcome, ok := checkOutcome(e); ok {
			fmt.Println(outcome)
			return
		}

		mv, err := e.ChooseAndApply(ctx)
		if err != nil {
			logw.Errorf(ctx, "Search failed: %v", err)
			continue
		}
		fmt.Printf("negabit plays %v\n", mv)
		printBoard(e.Position())
	}
}

// errInvalidInput is ErrInvalidInput, aliased locally so callers can wrap it
// without importing the engine package's sentinel twice.
var errInvalidInput = engine.ErrInvalidInput

// parseInput parses a line of the form "e2 e4": two algebraic squares
// separated by whitespace. The promotion piece, if the move turns out to be
// a promotion, is asked for separately via promptPromotion.
func parseInput(line string) (from, to board.Square, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", line, errInvalidInput)
	}

	from, err = board.ParseSquareStr(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, errInvalidInput)
	}
	to, err = board.ParseSquareStr(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, errInvalidInput)
	}
	return from, to, nil
}

// promptPromotion asks for the promotion piece on a move that reaches the
// back rank and reads one reply line, accepting either the piece letter or
// its full name (q|queen, r|rook, b|bishop, n|knight).
func promptPromotion(scanner *bufio.Scanner) (board.PieceKind, error) {
	fmt.Print("promote to q|queen, r|rook, b|bishop, n|knight> ")
	if !scanner.Scan() {
		return board.NoPiece, fmt.Errorf("no input: %w", errInvalidInput)
	}

	reply := strings.TrimSpace(scanner.Text())
	if reply == "" {
		return board.NoPiece, fmt.Errorf("%q: %w", reply, errInvalidInput)
	}

	k, ok := board.ParsePieceKind(rune(reply[0]))
	if !ok {
		return board.NoPiece, fmt.Errorf("%q: %w", reply, errInvalidInput)
	}
	return k, nil
}

// checkOutcome reports whether the side to move has no legal move, and if
// so, whether it is stalemate or checkmate.
func checkOutcome(e *engine.Engine) (string, bool) {
	pos := e.Position()
	turn := e.Turn()
	if len(pos.Moves(turn)) > 0 {
		return "", false
	}
	if pos.IsChecked(turn) {
		return fmt.Sprintf("CHECK MATE, %v wins", turn.Opponent()), true
	}
	return "STALE MATE", true
}

// glyphs maps (color, kind) to its Unicode chess symbol.
var glyphs = map[board.Color]map[board.PieceKind]rune{
	board.White: {
		board.King: '♔', board.Queen: '♕', board.Rook: '♖',
		board.Bishop: '♗', board.Knight: '♘', board.Pawn: '♙',
	},
	board.Black: {
		board.King: '♚', board.Queen: '♛', board.Rook: '♜',
		board.Bishop: '♝', board.Knight: '♞', board.Pawn: '♟',
	},
}

func printBoard(pos board.Position) {
	for rank := board.Rank8; rank.IsValid(); rank-- {
		var sb strings.Builder
		for file := board.FileA; file.IsValid(); file++ {
			sq := board.NewSquare(file, rank)
			if c, k, ok := pos.PieceAt(sq); ok {
				sb.WriteRune(glyphs[c][k])
			} else if (int(file)+int(rank))%2 == 0 {
				sb.WriteRune('◼')
			} else {
				sb.WriteRune('◻')
			}
			sb.WriteRune(' ')
		}
		fmt.Printf("%v %v\n", rank, sb.String())
	}
	fmt.Println("  a b c d e f g h")
}
