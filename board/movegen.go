package board

const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = fileA << 7
)

var promotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// GenerateMoves returns the pseudo-legal moves for the side to move. Moves
// that leave the mover's king in check are rejected later by MakeMove.
func (p *Position) GenerateMoves() []Move { return p.GenerateMovesInto(make([]Move, 0, 64)) }

// GenerateMovesInto appends the pseudo-legal moves into dst and returns it.
// The dst slice is truncated first so callers can reuse one buffer per ply.
func (p *Position) GenerateMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := p.sideToMove
	own := p.colored[us]
	enemy := p.colored[us.Other()]

	moves = p.genCastling(moves)

	for sqs := own; sqs != 0; {
		from := popLSB(&sqs)
		switch p.squares[from].Type() {
		case Pawn:
			moves = p.genPawn(moves, from, enemy)
		case Knight:
			moves = p.genKnight(moves, from, own)
		case Bishop:
			moves = p.genSlider(moves, from, diagonals[:], own)
		case Rook:
			moves = p.genSlider(moves, from, orthogonals[:], own)
		case Queen:
			moves = p.genSlider(moves, from, allDirs[:], own)
		case King:
			moves = p.genKing(moves, from, own)
		}
	}
	return moves
}

// LegalMoves returns the moves that survive MakeMove's king-safety check.
func (p *Position) LegalMoves() []Move {
	pseudo := p.GenerateMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if ok, snap := p.MakeMove(m); ok {
			p.UndoMove(snap)
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateCaptures returns the legal moves that remove an enemy piece,
// en passant included.
func (p *Position) GenerateCaptures() []Move {
	legal := p.LegalMoves()
	caps := legal[:0]
	for _, m := range legal {
		if p.IsCapture(m) {
			caps = append(caps, m)
		}
	}
	return caps
}

// IsCapture reports whether m captures a piece in the current position.
func (p *Position) IsCapture(m Move) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	if p.squares[m.To] != NoPiece {
		return true
	}
	return m.To == p.enPassant && p.squares[m.From].Type() == Pawn
}

func (p *Position) genCastling(moves []Move) []Move {
	if p.castling == NoCastling {
		return moves
	}
	us := p.sideToMove
	inCheck := false
	checked := false
	for i := range castleRules {
		r := &castleRules[i]
		if r.color != us || !p.castling.Has(r.right) || p.occupied&r.between != 0 {
			continue
		}
		if !p.squares[r.kingFrom].Is(us, King) || !p.squares[r.rookFrom].Is(us, Rook) {
			continue
		}
		if !checked {
			inCheck = p.SquareAttackedBy(p.kingSquares[us], us.Other())
			checked = true
		}
		if inCheck || p.SquareAttackedBy(r.transit, us.Other()) {
			continue
		}
		moves = append(moves, Move{From: r.kingFrom, To: r.kingTo})
	}
	return moves
}

func (p *Position) genSlider(moves []Move, from Square, dirs []Direction, own uint64) []Move {
	var targets uint64
	for _, dir := range dirs {
		targets |= p.geo.SlidingAttacks(from, dir, p.occupied)
	}
	targets &^= own
	for targets != 0 {
		moves = append(moves, Move{From: from, To: popLSB(&targets)})
	}
	return moves
}

func (p *Position) genKnight(moves []Move, from Square, own uint64) []Move {
	for i := range knightDeltas {
		to, ok := knightTarget(from, i)
		if !ok || own&bb(to) != 0 {
			continue
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

func (p *Position) genKing(moves []Move, from Square, own uint64) []Move {
	for _, dir := range allDirs {
		if p.geo.EdgeDistance[from][dir] == 0 {
			continue
		}
		to := from + Square(Offsets[dir])
		if own&bb(to) != 0 {
			continue
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

func (p *Position) genPawn(moves []Move, from Square, enemy uint64) []Move {
	us := p.sideToMove
	forward, startRank, lastRank := Square(8), 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}

	one := from + forward
	if one.Valid() && p.empty&bb(one) != 0 {
		moves = addPawnMove(moves, from, one, lastRank)
		two := one + forward
		if from.Rank() == startRank && p.empty&bb(two) != 0 {
			moves = append(moves, Move{From: from, To: two})
		}
	}

	var attacks uint64
	src := bb(from)
	if us == White {
		attacks = (src<<7)&^fileH | (src<<9)&^fileA
	} else {
		attacks = (src>>9)&^fileH | (src>>7)&^fileA
	}
	targets := attacks & enemy
	if p.enPassant != NoSquare {
		targets |= attacks & bb(p.enPassant)
	}
	for targets != 0 {
		moves = addPawnMove(moves, from, popLSB(&targets), lastRank)
	}
	return moves
}

// addPawnMove emits a plain pawn move, or all four promotions when the
// destination is on the mover's last rank.
func addPawnMove(moves []Move, from, to Square, lastRank int) []Move {
	if to.Rank() != lastRank {
		return append(moves, Move{From: from, To: to})
	}
	for _, pt := range promotionTypes {
		moves = append(moves, Move{From: from, To: to, Promotion: pt})
	}
	return moves
}
