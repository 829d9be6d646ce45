package board

// HasLegalMoves reports whether the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	var buf [64]Move
	for _, m := range p.GenerateMovesInto(buf[:0]) {
		if ok, snap := p.MakeMove(m); ok {
			p.UndoMove(snap)
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (p *Position) InCheckmate() bool {
	return p.IsInCheck() && !p.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (p *Position) InStalemate() bool {
	return !p.IsInCheck() && !p.HasLegalMoves()
}

// IsDrawBy50 reports a 50-move rule draw (the clock counts half-moves).
func (p *Position) IsDrawBy50() bool {
	return p.halfmoveClock >= 100
}

// IsDrawByRepetition reports a threefold repetition given a history of
// StateKey values. The current position counts as one occurrence; a
// trailing history entry equal to the current key is not double counted.
func (p *Position) IsDrawByRepetition(history []uint64) bool {
	target := p.StateKey()
	end := len(history)
	if end > 0 && history[end-1] == target {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if history[i] == target {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}
