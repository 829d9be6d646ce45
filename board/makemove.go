package board

// Snapshot holds the state needed to undo one move. MakeMove hands it to
// the caller, who owns it until the matching UndoMove.
type Snapshot struct {
	move          Move
	squares       [64]Piece
	kingSquares   [2]Square
	enPassant     Square
	castling      CastlingRights
	halfmoveClock int
}

// Move returns the move this snapshot precedes.
func (s Snapshot) Move() Move { return s.move }

func (p *Position) snapshot(m Move) Snapshot {
	return Snapshot{
		move:          m,
		squares:       p.squares,
		kingSquares:   p.kingSquares,
		enPassant:     p.enPassant,
		castling:      p.castling,
		halfmoveClock: p.halfmoveClock,
	}
}

func (p *Position) restore(s *Snapshot) {
	p.squares = s.squares
	p.kingSquares = s.kingSquares
	p.enPassant = s.enPassant
	p.castling = s.castling
	p.halfmoveClock = s.halfmoveClock
}

// castleRuleFor returns the held castling right whose king move is from -> to.
func (p *Position) castleRuleFor(from, to Square) *castleRule {
	for i := range castleRules {
		r := &castleRules[i]
		if r.kingFrom == from && r.kingTo == to && r.color == p.sideToMove && p.castling.Has(r.right) {
			return r
		}
	}
	return nil
}

// MakeMove applies a move. It returns ok=false without any lasting change
// when a square is off the board, the start square does not hold a piece
// of the side to move, or the move leaves the mover's king attacked.
func (p *Position) MakeMove(m Move) (ok bool, snap Snapshot) {
	from, to := m.From, m.To
	if !from.Valid() || !to.Valid() {
		return false, snap
	}
	us := p.sideToMove
	moving := p.squares[from]
	if moving == NoPiece || moving.Color() != us {
		return false, snap
	}
	if m.Promotion != NoPieceType && (moving.Type() != Pawn || m.Promotion < Knight || m.Promotion > Queen) {
		return false, snap
	}
	snap = p.snapshot(m)
	captured := p.squares[to]

	p.halfmoveClock++
	if captured != NoPiece || moving.Type() == Pawn {
		p.halfmoveClock = 0
	}

	if r := p.castleRuleFor(from, to); r != nil && moving.Type() == King {
		p.squares[r.kingTo] = p.squares[r.kingFrom]
		p.squares[r.kingFrom] = NoPiece
		p.squares[r.rookTo] = p.squares[r.rookFrom]
		p.squares[r.rookFrom] = NoPiece
		p.castling &^= colorRights(us)
		p.enPassant = NoSquare
	} else if to == p.enPassant && moving.Type() == Pawn {
		passed := to - 8
		if us == Black {
			passed = to + 8
		}
		p.squares[passed] = NoPiece
		p.squares[to] = moving
		p.squares[from] = NoPiece
		p.enPassant = NoSquare
	} else {
		if moving.Type() == Pawn && (to-from == 16 || from-to == 16) {
			p.enPassant = (from + to) / 2
		} else {
			p.enPassant = NoSquare
		}
		p.squares[to] = moving
		p.squares[from] = NoPiece
	}

	if m.Promotion != NoPieceType {
		p.squares[to] = NewPiece(us, m.Promotion)
	}

	if moving.Type() == King {
		p.kingSquares[us] = to
		p.castling &^= colorRights(us)
	}
	p.castling &^= rightsLostAt[from] | rightsLostAt[to]

	p.plyCount++
	p.UpdateBitboards()

	if p.SquareAttackedBy(p.kingSquares[us], us.Other()) {
		p.restore(&snap)
		p.plyCount--
		p.UpdateBitboards()
		return false, snap
	}
	p.sideToMove = us.Other()
	return true, snap
}

// UndoMove reverts the move most recently applied by MakeMove.
func (p *Position) UndoMove(snap Snapshot) {
	p.restore(&snap)
	p.plyCount--
	p.sideToMove = p.sideToMove.Other()
	p.UpdateBitboards()
}

// PushMove makes the move and, if legal, pushes its snapshot and the
// resulting state key. On failure nothing is appended.
func (p *Position) PushMove(m Move, stack *[]Snapshot, history *[]uint64) bool {
	ok, snap := p.MakeMove(m)
	if !ok {
		return false
	}
	*stack = append(*stack, snap)
	*history = append(*history, p.StateKey())
	return true
}

// PopMove undoes the last move pushed with PushMove.
// It panics if the stack is empty.
func (p *Position) PopMove(stack *[]Snapshot, history *[]uint64) {
	n := len(*stack)
	if n == 0 {
		panic("PopMove: empty stack")
	}
	snap := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	p.UndoMove(snap)
	if len(*history) > 0 {
		*history = (*history)[:len(*history)-1]
	}
}
