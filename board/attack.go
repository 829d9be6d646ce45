package board

// IsSquareAttacked reports whether sq is attacked by the opponent of the
// side to move.
func (p *Position) IsSquareAttacked(sq Square) bool {
	return p.SquareAttackedBy(sq, p.sideToMove.Other())
}

// IsInCheck reports whether the side to move has its king attacked.
func (p *Position) IsInCheck() bool {
	return p.IsSquareAttacked(p.kingSquares[p.sideToMove])
}

// SquareAttackedBy reports whether any piece of color by attacks sq.
func (p *Position) SquareAttackedBy(sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}
	g := p.geo
	occ := p.occupied

	// Rook/queen along files and ranks, bishop/queen along diagonals. The
	// nearest occupant decides each ray.
	for _, dir := range orthogonals {
		if b := g.firstBlocker(sq, dir, occ); b != NoSquare {
			pc := p.squares[b]
			if pc.Color() == by && (pc.Type() == Rook || pc.Type() == Queen) {
				return true
			}
		}
	}
	for _, dir := range diagonals {
		if b := g.firstBlocker(sq, dir, occ); b != NoSquare {
			pc := p.squares[b]
			if pc.Color() == by && (pc.Type() == Bishop || pc.Type() == Queen) {
				return true
			}
		}
	}

	// Pawns attack one step diagonally toward the defender.
	pawnDirs := [2]Direction{SouthEast, SouthWest}
	if by == Black {
		pawnDirs = [2]Direction{NorthWest, NorthEast}
	}
	pawn := NewPiece(by, Pawn)
	for _, dir := range pawnDirs {
		if g.EdgeDistance[sq][dir] != 0 && p.squares[sq+Square(Offsets[dir])] == pawn {
			return true
		}
	}

	knight := NewPiece(by, Knight)
	for i := range knightDeltas {
		if t, ok := knightTarget(sq, i); ok && p.squares[t] == knight {
			return true
		}
	}

	king := NewPiece(by, King)
	for _, dir := range allDirs {
		if g.EdgeDistance[sq][dir] != 0 && p.squares[sq+Square(Offsets[dir])] == king {
			return true
		}
	}
	return false
}
