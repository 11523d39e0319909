package board

import (
	"fmt"
	"strings"
)

// Placement defines a piece placement, used to build ad hoc positions (tests,
// puzzles) without going through NewInitial and a sequence of Apply calls.
type Placement struct {
	Square Square
	Color  Color
	Kind   PieceKind
}

// Position represents a chess position: both sides' piece sets, the castling
// rights still available, and the previous move (needed to detect en passant
// eligibility). It carries no side-to-move field — callers track whose turn
// it is and pass the color into every query. Position is a small value type:
// copies are cheap and never alias, which is what lets move generation apply
// a candidate on a copy to test king safety.
type Position struct {
	pieces   [NumColors]PieceSet
	castling Castling
	prevMove Move
}

// NewInitial returns the standard starting position, white to move, full
// castling rights, and a sentinel previous move that can never be mistaken
// for a pawn leap.
func NewInitial() Position {
	var p Position

	p.pieces[White] = PieceSet{
		Pawns:   BitRank(Rank2),
		Rooks:   BitMask(A1) | BitMask(H1),
		Knights: BitMask(B1) | BitMask(G1),
		Bishops: BitMask(C1) | BitMask(F1),
		Queens:  BitMask(D1),
		King:    BitMask(E1),
	}
	p.pieces[White].All = p.pieces[White].Pawns | p.pieces[White].Rooks | p.pieces[White].Knights |
		p.pieces[White].Bishops | p.pieces[White].Queens | p.pieces[White].King

	p.pieces[Black] = PieceSet{
		Pawns:   BitRank(Rank7),
		Rooks:   BitMask(A8) | BitMask(H8),
		Knights: BitMask(B8) | BitMask(G8),
		Bishops: BitMask(C8) | BitMask(F8),
		Queens:  BitMask(D8),
		King:    BitMask(E8),
	}
	p.pieces[Black].All = p.pieces[Black].Pawns | p.pieces[Black].Rooks | p.pieces[Black].Knights |
		p.pieces[Black].Bishops | p.pieces[Black].Queens | p.pieces[Black].King

	p.castling = FullCastingRights
	p.prevMove = Move{From: E8, To: E8, Kind: KingMove}

	return p
}

// NewPosition builds a position from explicit placements, useful for tests
// and puzzles. It rejects duplicate placements and requires exactly one king
// per side.
func NewPosition(placements []Placement, castling Castling, prevMove Move) (Position, error) {
	var p Position
	for _, pl := range placements {
		if _, _, ok := p.PieceAt(pl.Square); ok {
			return Position{}, fmt.Errorf("duplicate placement at %v", pl.Square)
		}
		p.pieces[pl.Color].Put(pl.Kind, pl.Square)
	}
	if p.pieces[White].King.PopCount() != 1 || p.pieces[Black].King.PopCount() != 1 {
		return Position{}, fmt.Errorf("position must have exactly one king per side")
	}
	p.castling = castling
	p.prevMove = prevMove
	return p, nil
}

// Castling returns the castling rights still available.
func (p Position) Castling() Castling {
	return p.castling
}

// PrevMove returns the last move applied, or the NewInitial sentinel.
func (p Position) PrevMove() Move {
	return p.prevMove
}

// PieceSetOf returns the piece bitboards for the given color.
func (p Position) PieceSetOf(c Color) PieceSet {
	return p.pieces[c]
}

// PieceAt returns the color and kind of the piece on sq, if any.
func (p Position) PieceAt(sq Square) (Color, PieceKind, bool) {
	if k, ok := p.pieces[White].KindAt(sq); ok {
		return White, k, true
	}
	if k, ok := p.pieces[Black].KindAt(sq); ok {
		return Black, k, true
	}
	return ZeroColor, NoPiece, false
}

func (p Position) allOccupied() Bitboard {
	return p.pieces[White].All | p.pieces[Black].All
}

// AttacksOf returns the union of squares threatened by color c, without
// mutating the position. The opponent king is removed from the blocker mask
// for sliding attacks, so a square behind it is still marked attacked: that
// is what makes it illegal for the king to step along the attacker's ray.
func (p Position) AttacksOf(c Color) Bitboard {
	ps := p.pieces[c]
	opp := p.pieces[c.Opponent()]
	blockers := p.allOccupied() &^ opp.King

	var attack Bitboard
	attack |= PawnCaptureboard(c, ps.Pawns)
	if ps.King != EmptyBitboard {
		attack |= KingAttackboard(ps.King.LastPopSquare())
	}
	for _, sq := range ps.Knights.Squares() {
		attack |= KnightAttackboard(sq)
	}
	for _, sq := range (ps.Rooks | ps.Queens).Squares() {
		attack |= RookAttacks(sq, blockers)
	}
	for _, sq := range (ps.Bishops | ps.Queens).Squares() {
		attack |= BishopAttacks(sq, blockers)
	}
	return attack
}

// IsChecked returns true iff color c's king is currently attacked.
func (p Position) IsChecked(c Color) bool {
	return p.pieces[c].King&p.AttacksOf(c.Opponent()) != 0
}

// PinsOf returns the bitmask of color c's pieces absolutely pinned to its
// king by an enemy slider. From the king, each of the 8 rays is walked: the
// first friendly piece found is the pin candidate; if the ray's next piece is
// an enemy slider of the matching flavor with nothing in between, the
// candidate is pinned. A second friendly piece, or any non-matching enemy
// piece, ends the ray without marking anything.
func (p Position) PinsOf(c Color) Bitboard {
	ps := p.pieces[c]
	opp := p.pieces[c.Opponent()]
	if ps.King == EmptyBitboard {
		return EmptyBitboard
	}
	kingSq := ps.King.LastPopSquare()

	orthoPinners := opp.Rooks | opp.Queens
	diagPinners := opp.Bishops | opp.Queens

	var pins Bitboard
	walk := func(dir func(Bitboard) Bitboard, pinners Bitboard) {
		var pin Bitboard
		cur := BitMask(kingSq)
		for i := 0; i < 7; i++ {
			cur = dir(cur)
			if cur == EmptyBitboard {
				return
			}
			if cur&ps.All != 0 {
				if pin != EmptyBitboard {
					return
				}
				pin = cur
				continue
			}
			if cur&pinners != 0 {
				pins |= pin
				return
			}
			if cur&opp.All != 0 {
				return
			}
		}
	}

	for _, dir := range orthogonalDirections {
		walk(dir, orthoPinners)
	}
	for _, dir := range diagonalDirections {
		walk(dir, diagPinners)
	}
	return pins
}

// pushFunc adds a pseudo-legal candidate to a move list, filtering it for
// king safety unless skipSafety is set (used for king steps and castling,
// whose destination masks already exclude attacked squares).
type pushFunc func(mv Move, skipSafety bool)

// Moves returns every legal move for color c.
func (p Position) Moves(c Color) []Move {
	return p.generate(c, false)
}

// Captures returns every legal capture for color c: captures proper, en
// passant, and capturing promotions. Castling and quiet moves are excluded.
func (p Position) Captures(c Color) []Move {
	return p.generate(c, true)
}

func (p Position) generate(c Color, capturesOnly bool) []Move {
	ps := p.pieces[c]
	opp := p.pieces[c.Opponent()]
	pins := p.PinsOf(c)
	otherAttack := p.AttacksOf(c.Opponent())
	inCheck := ps.King&otherAttack != 0
	all := p.allOccupied()

	moves := make([]Move, 0, 32)
	push := func(mv Move, skipSafety bool) {
		if skipSafety || (!inCheck && BitMask(mv.From)&pins == 0) {
			moves = append(moves, mv)
			return
		}
		cp := p
		cp.Apply(mv)
		if cp.AttacksOf(c.Opponent())&cp.pieces[c].King == 0 {
			moves = append(moves, mv)
		}
	}

	if !capturesOnly {
		p.generateCastles(c, otherAttack, all, push)
	}
	p.generateEnPassant(c, push)
	if !capturesOnly {
		p.generatePawnPushes(c, ps, all, push)
	}
	p.generatePawnCaptures(c, ps, opp, push)
	p.generateKingSteps(c, ps, otherAttack, capturesOnly, opp, push)
	p.generateKnights(ps, capturesOnly, opp, push)
	p.generateSliders(ps, all, capturesOnly, opp, push)

	return moves
}

func (p Position) generateCastles(c Color, otherAttack, all Bitboard, push pushFunc) {
	kingHome, kingDest, queenDest := E1, G1, C1
	pathK, emptyK := Bitboard(0x70), Bitboard(0x60)
	pathQ, emptyQ := Bitboard(0x1c), Bitboard(0xe)
	if c == Black {
		kingHome, kingDest, queenDest = E8, G8, C8
		pathK, emptyK = pathK<<56, emptyK<<56
		pathQ, emptyQ = pathQ<<56, emptyQ<<56
	}

	if p.castling.IsAllowed(KingSideCastle(c)) && otherAttack&pathK == 0 && all&emptyK == 0 {
		push(Move{From: kingHome, To: kingDest, Kind: Castle}, true)
	}
	if p.castling.IsAllowed(QueenSideCastle(c)) && otherAttack&pathQ == 0 && all&emptyQ == 0 {
		push(Move{From: kingHome, To: queenDest, Kind: Castle}, true)
	}
}

func (p Position) generateEnPassant(c Color, push pushFunc) {
	if p.prevMove.Kind != PawnLeap {
		return
	}
	ps := p.pieces[c]
	leapTo := p.prevMove.To
	leapBit := BitMask(leapTo)

	destSq := leapTo + 8
	if c == Black {
		destSq = leapTo - 8
	}

	if right := ShiftEast(leapBit) & ps.Pawns; right != EmptyBitboard {
		push(Move{From: right.LastPopSquare(), To: destSq, Kind: PawnEnPassant}, false)
	}
	if left := ShiftWest(leapBit) & ps.Pawns; left != EmptyBitboard {
		push(Move{From: left.LastPopSquare(), To: destSq, Kind: PawnEnPassant}, false)
	}
}

func (p Position) generatePawnPushes(c Color, ps PieceSet, all Bitboard, push pushFunc) {
	fwd := PawnMoveboard(all, c, ps.Pawns)
	shift := ShiftNorth
	from8 := Square(8)
	if c == Black {
		shift = ShiftSouth
	}
	for _, to := range fwd.Squares() {
		from := to - from8
		if c == Black {
			from = to + from8
		}
		push(Move{From: from, To: to, Kind: pawnKindForDest(c, to)}, false)
	}

	leap := shift(fwd) &^ all & PawnJumpRank(c)
	from16 := Square(16)
	for _, to := range leap.Squares() {
		from := to - from16
		if c == Black {
			from = to + from16
		}
		push(Move{From: from, To: to, Kind: PawnLeap}, false)
	}
}

func (p Position) generatePawnCaptures(c Color, ps, opp PieceSet, push pushFunc) {
	if c == White {
		for _, to := range (ShiftNE(ps.Pawns) & opp.All).Squares() {
			push(Move{From: to - 9, To: to, Kind: pawnKindForDest(c, to)}, false)
		}
		for _, to := range (ShiftNW(ps.Pawns) & opp.All).Squares() {
			push(Move{From: to - 7, To: to, Kind: pawnKindForDest(c, to)}, false)
		}
		return
	}
	for _, to := range (ShiftSE(ps.Pawns) & opp.All).Squares() {
		push(Move{From: to + 7, To: to, Kind: pawnKindForDest(c, to)}, false)
	}
	for _, to := range (ShiftSW(ps.Pawns) & opp.All).Squares() {
		push(Move{From: to + 9, To: to, Kind: pawnKindForDest(c, to)}, false)
	}
}

func (p Position) generateKingSteps(c Color, ps PieceSet, otherAttack Bitboard, capturesOnly bool, opp PieceSet, push pushFunc) {
	if ps.King == EmptyBitboard {
		return
	}
	from := ps.King.LastPopSquare()
	dest := KingAttackboard(from) &^ ps.All &^ otherAttack
	if capturesOnly {
		dest &= opp.All
	}
	for _, to := range dest.Squares() {
		push(Move{From: from, To: to, Kind: KingMove}, true)
	}
}

func (p Position) generateKnights(ps PieceSet, capturesOnly bool, opp PieceSet, push pushFunc) {
	for _, from := range ps.Knights.Squares() {
		dest := KnightAttackboard(from) &^ ps.All
		if capturesOnly {
			dest &= opp.All
		}
		for _, to := range dest.Squares() {
			push(Move{From: from, To: to, Kind: KnightMove}, false)
		}
	}
}

func (p Position) generateSliders(ps PieceSet, all Bitboard, capturesOnly bool, opp PieceSet, push pushFunc) {
	slide := func(from Square, attacks Bitboard, kind MoveKind) {
		dest := attacks &^ ps.All
		if capturesOnly {
			dest &= opp.All
		}
		for _, to := range dest.Squares() {
			push(Move{From: from, To: to, Kind: kind}, false)
		}
	}
	for _, from := range ps.Rooks.Squares() {
		slide(from, RookAttacks(from, all), RookMove)
	}
	for _, from := range ps.Bishops.Squares() {
		slide(from, BishopAttacks(from, all), BishopMove)
	}
	for _, from := range ps.Queens.Squares() {
		slide(from, QueenAttacks(from, all), QueenMove)
	}
}

// pawnKindForDest chooses Pawn vs PawnQueenPromotion by the destination rank;
// only queen promotions are generated, though all four kinds are accepted by
// IsLegal and Apply when constructed externally.
func pawnKindForDest(c Color, to Square) MoveKind {
	if BitMask(to)&PawnPromotionRank(c) != 0 {
		return PawnQueenPromotion
	}
	return PawnMove
}

// IsLegal validates an externally constructed move against the current
// position. It re-derives the allowed destinations for the piece at mv.From
// and checks membership of mv.To, then (except for castling, which validates
// its own path and attack conditions, and king steps, whose destination mask
// already excludes attacked squares) applies the move on a copy and verifies
// the mover's king ends up safe.
func (p Position) IsLegal(c Color, mv Move) bool {
	if !mv.From.IsValid() || !mv.To.IsValid() || mv.From == mv.To {
		return false
	}
	ps := p.pieces[c]
	opp := p.pieces[c.Opponent()]
	all := p.allOccupied()

	if ps.All&BitMask(mv.From) == 0 {
		return false
	}

	switch mv.Kind {
	case Castle:
		return p.isLegalCastle(c, mv, all)
	case KingMove:
		if ps.King&BitMask(mv.From) == 0 {
			return false
		}
		dest := KingAttackboard(mv.From) &^ ps.All &^ p.AttacksOf(c.Opponent())
		return dest&BitMask(mv.To) != 0
	case KnightMove:
		if ps.Knights&BitMask(mv.From) == 0 {
			return false
		}
		dest := KnightAttackboard(mv.From) &^ ps.All
		return dest&BitMask(mv.To) != 0 && p.stillSafeAfter(c, mv)
	case RookMove:
		if ps.Rooks&BitMask(mv.From) == 0 {
			return false
		}
		dest := RookAttacks(mv.From, all) &^ ps.All
		return dest&BitMask(mv.To) != 0 && p.stillSafeAfter(c, mv)
	case BishopMove:
		if ps.Bishops&BitMask(mv.From) == 0 {
			return false
		}
		dest := BishopAttacks(mv.From, all) &^ ps.All
		return dest&BitMask(mv.To) != 0 && p.stillSafeAfter(c, mv)
	case QueenMove:
		if ps.Queens&BitMask(mv.From) == 0 {
			return false
		}
		dest := QueenAttacks(mv.From, all) &^ ps.All
		return dest&BitMask(mv.To) != 0 && p.stillSafeAfter(c, mv)
	case PawnMove, PawnQueenPromotion, PawnRookPromotion, PawnBishopPromotion, PawnKnightPromotion:
		if ps.Pawns&BitMask(mv.From) == 0 {
			return false
		}
		from := BitMask(mv.From)
		dest := PawnMoveboard(all, c, from) | (PawnCaptureboard(c, from) & opp.All)
		if dest&BitMask(mv.To) == 0 {
			return false
		}
		if (mv.Kind != PawnMove) != (BitMask(mv.To)&PawnPromotionRank(c) != 0) {
			return false
		}
		return p.stillSafeAfter(c, mv)
	case PawnLeap:
		if ps.Pawns&BitMask(mv.From) == 0 {
			return false
		}
		from := BitMask(mv.From)
		fwd := PawnMoveboard(all, c, from)
		shift := ShiftNorth
		if c == Black {
			shift = ShiftSouth
		}
		dest := shift(fwd) &^ all & PawnJumpRank(c)
		return dest&BitMask(mv.To) != 0 && p.stillSafeAfter(c, mv)
	case PawnEnPassant:
		return p.isLegalEnPassant(c, mv) && p.stillSafeAfter(c, mv)
	default:
		return false
	}
}

func (p Position) stillSafeAfter(c Color, mv Move) bool {
	cp := p
	cp.Apply(mv)
	return cp.AttacksOf(c.Opponent())&cp.pieces[c].King == 0
}

func (p Position) isLegalEnPassant(c Color, mv Move) bool {
	if p.prevMove.Kind != PawnLeap {
		return false
	}
	ps := p.pieces[c]
	if ps.Pawns&BitMask(mv.From) == 0 {
		return false
	}
	leapTo := p.prevMove.To
	wantTo := leapTo + 8
	if c == Black {
		wantTo = leapTo - 8
	}
	if mv.To != wantTo {
		return false
	}
	adjacent := ShiftEast(BitMask(leapTo)) | ShiftWest(BitMask(leapTo))
	return adjacent&BitMask(mv.From) != 0
}

func (p Position) isLegalCastle(c Color, mv Move, all Bitboard) bool {
	kingHome, kingDest, queenDest := E1, G1, C1
	pathK, emptyK := Bitboard(0x70), Bitboard(0x60)
	pathQ, emptyQ := Bitboard(0x1c), Bitboard(0xe)
	if c == Black {
		kingHome, kingDest, queenDest = E8, G8, C8
		pathK, emptyK = pathK<<56, emptyK<<56
		pathQ, emptyQ = pathQ<<56, emptyQ<<56
	}
	if mv.From != kingHome {
		return false
	}

	otherAttack := p.AttacksOf(c.Opponent())
	switch mv.To {
	case kingDest:
		return p.castling.IsAllowed(KingSideCastle(c)) && otherAttack&pathK == 0 && all&emptyK == 0
	case queenDest:
		return p.castling.IsAllowed(QueenSideCastle(c)) && otherAttack&pathQ == 0 && all&emptyQ == 0
	default:
		return false
	}
}

// Apply mutates the position in place according to mv. Callers must only
// pass moves that came from Moves/Captures or were accepted by IsLegal;
// Apply does not re-validate legality, and an out-of-taxonomy castle
// destination is a programming error, not a recoverable one.
func (p *Position) Apply(mv Move) {
	mover := White
	if p.pieces[White].All&BitMask(mv.From) == 0 {
		mover = Black
	}
	opp := mover.Opponent()

	p.pieces[mover].All &^= BitMask(mv.From)
	p.pieces[mover].All |= BitMask(mv.To)

	switch mv.Kind {
	case KingMove:
		p.pieces[mover].King = BitMask(mv.To)
		p.pieces[opp].Remove(mv.To)
	case QueenMove:
		p.moveKind(mover, opp, Queen, mv)
	case RookMove:
		p.moveKind(mover, opp, Rook, mv)
	case BishopMove:
		p.moveKind(mover, opp, Bishop, mv)
	case KnightMove:
		p.moveKind(mover, opp, Knight, mv)
	case PawnMove:
		p.moveKind(mover, opp, Pawn, mv)
	case PawnLeap:
		p.pieces[mover].Pawns &^= BitMask(mv.From)
		p.pieces[mover].Pawns |= BitMask(mv.To)
	case PawnEnPassant:
		capSq := mv.To - 8
		if mover == Black {
			capSq = mv.To + 8
		}
		p.pieces[opp].RemoveKind(Pawn, capSq)
		p.pieces[mover].Pawns &^= BitMask(mv.From)
		p.pieces[mover].Pawns |= BitMask(mv.To)
	case PawnQueenPromotion, PawnRookPromotion, PawnBishopPromotion, PawnKnightPromotion:
		p.pieces[mover].Pawns &^= BitMask(mv.From)
		p.pieces[mover].Put(mv.Kind.PromotionPiece(), mv.To)
		p.pieces[opp].Remove(mv.To)
	case Castle:
		p.applyCastle(mv)
	default:
		panic(fmt.Sprintf("apply: invalid move kind %v", mv.Kind))
	}

	p.updateCastlingRights()
	p.prevMove = mv
}

func (p *Position) moveKind(mover, opp Color, k PieceKind, mv Move) {
	ps := &p.pieces[mover]
	switch k {
	case Queen:
		ps.Queens &^= BitMask(mv.From)
		ps.Queens |= BitMask(mv.To)
	case Rook:
		ps.Rooks &^= BitMask(mv.From)
		ps.Rooks |= BitMask(mv.To)
	case Bishop:
		ps.Bishops &^= BitMask(mv.From)
		ps.Bishops |= BitMask(mv.To)
	case Knight:
		ps.Knights &^= BitMask(mv.From)
		ps.Knights |= BitMask(mv.To)
	case Pawn:
		ps.Pawns &^= BitMask(mv.From)
		ps.Pawns |= BitMask(mv.To)
	}
	p.pieces[opp].Remove(mv.To)
}

func (p *Position) applyCastle(mv Move) {
	switch mv.To {
	case G1:
		p.pieces[White].King = BitMask(G1)
		p.pieces[White].Rooks &^= BitMask(H1)
		p.pieces[White].Rooks |= BitMask(F1)
		p.pieces[White].All &^= BitMask(H1)
		p.pieces[White].All |= BitMask(F1)
	case C1:
		p.pieces[White].King = BitMask(C1)
		p.pieces[White].Rooks &^= BitMask(A1)
		p.pieces[White].Rooks |= BitMask(D1)
		p.pieces[White].All &^= BitMask(A1)
		p.pieces[White].All |= BitMask(D1)
	case G8:
		p.pieces[Black].King = BitMask(G8)
		p.pieces[Black].Rooks &^= BitMask(H8)
		p.pieces[Black].Rooks |= BitMask(F8)
		p.pieces[Black].All &^= BitMask(H8)
		p.pieces[Black].All |= BitMask(F8)
	case C8:
		p.pieces[Black].King = BitMask(C8)
		p.pieces[Black].Rooks &^= BitMask(A8)
		p.pieces[Black].Rooks |= BitMask(D8)
		p.pieces[Black].All &^= BitMask(A8)
		p.pieces[Black].All |= BitMask(D8)
	default:
		panic(fmt.Sprintf("apply: invalid castle destination %v", mv.To))
	}
}

// updateCastlingRights re-derives all four rights from each side's own king
// and rook home-square occupancy. Checking a side's rights against that same
// side's masks (rather than the opponent's) keeps revocation monotonic and
// color-correct: a captured rook revokes its owner's right exactly once, a
// king that has moved or castled away revokes both of its own rights, and
// neither ever touches the other color's flags.
func (p *Position) updateCastlingRights() {
	if p.pieces[White].King != BitMask(E1) {
		p.castling = p.castling.Revoke(WhiteKingSideCastle | WhiteQueenSideCastle)
	}
	if p.pieces[Black].King != BitMask(E8) {
		p.castling = p.castling.Revoke(BlackKingSideCastle | BlackQueenSideCastle)
	}
	if p.pieces[White].Rooks&BitMask(A1) == 0 {
		p.castling = p.castling.Revoke(WhiteQueenSideCastle)
	}
	if p.pieces[White].Rooks&BitMask(H1) == 0 {
		p.castling = p.castling.Revoke(WhiteKingSideCastle)
	}
	if p.pieces[Black].Rooks&BitMask(A8) == 0 {
		p.castling = p.castling.Revoke(BlackQueenSideCastle)
	}
	if p.pieces[Black].Rooks&BitMask(H8) == 0 {
		p.castling = p.castling.Revoke(BlackKingSideCastle)
	}
}

// DeriveMove constructs a Move from a (from, to) coordinate pair as typed by
// an interactive front-end. The move kind is inferred from the piece at from
// and the distance/occupancy of to; callers may then rewrite a
// PawnQueenPromotion's Kind to another promotion variant before Apply. Returns
// false if there is no piece of color c at from, or the resulting move is not
// legal.
func (p Position) DeriveMove(c Color, from, to Square) (Move, bool) {
	mc, k, ok := p.PieceAt(from)
	if !ok || mc != c {
		return Move{}, false
	}

	var kind MoveKind
	switch k {
	case King:
		if AbsDiff(from, to) == 2 {
			kind = Castle
		} else {
			kind = KingMove
		}
	case Queen:
		kind = QueenMove
	case Rook:
		kind = RookMove
	case Bishop:
		kind = BishopMove
	case Knight:
		kind = KnightMove
	case Pawn:
		diff := AbsDiff(from, to)
		opp := p.pieces[c.Opponent()]
		switch {
		case diff == 16:
			kind = PawnLeap
		case diff == 8 || opp.All&BitMask(to) != 0:
			kind = pawnKindForDest(c, to)
		default:
			kind = PawnEnPassant
		}
	default:
		return Move{}, false
	}

	mv := Move{From: from, To: to, Kind: kind}
	if !p.IsLegal(c, mv) {
		return Move{}, false
	}
	return mv, true
}

func (p Position) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			sq := NewSquare(f, Rank(r))
			if c, k, ok := p.PieceAt(sq); ok {
				sb.WriteString(printPiece(c, k))
			} else {
				sb.WriteRune('-')
			}
		}
		if r != int(Rank1) {
			sb.WriteRune('/')
		}
	}
	return fmt.Sprintf("%v %v", sb.String(), p.castling)
}

func printPiece(c Color, k PieceKind) string {
	if c == White {
		return strings.ToUpper(k.String())
	}
	return strings.ToLower(k.String())
}
