// Package perft counts move-tree leaf nodes to validate move generation
// against published reference counts.
package perft

import (
	"chess-rules/board"
	"chess-rules/ttable"
)

// Count returns the number of leaf nodes at depth from p.
func Count(p *board.Position, depth int) uint64 {
	var r Runner
	return r.Count(p, depth)
}

// Divide returns the leaf count below each legal root move, keyed by its
// long algebraic form.
func Divide(p *board.Position, depth int) map[string]uint64 {
	var r Runner
	return r.Divide(p, depth)
}

// Runner counts nodes, optionally memoising subtree counts in Cache.
type Runner struct {
	Cache *ttable.Table

	buffers [][]board.Move
}

// Count returns the number of leaf nodes at depth from p.
func (r *Runner) Count(p *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	for len(r.buffers) < depth+1 {
		r.buffers = append(r.buffers, make([]board.Move, 0, 64))
	}
	return r.count(p, depth)
}

func (r *Runner) count(p *board.Position, depth int) uint64 {
	var key uint64
	if r.Cache != nil && depth > 1 {
		key = p.StateKey()
		if nodes, ok := r.Cache.Probe(key, int8(depth)); ok {
			return nodes
		}
	}

	moves := p.GenerateMovesInto(r.buffers[depth])
	r.buffers[depth] = moves
	var nodes uint64
	for _, m := range moves {
		ok, snap := p.MakeMove(m)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += r.count(p, depth-1)
		}
		p.UndoMove(snap)
	}

	if r.Cache != nil && depth > 1 {
		r.Cache.Store(key, int8(depth), nodes)
	}
	return nodes
}

// Divide returns the leaf count below each legal root move.
func (r *Runner) Divide(p *board.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range p.LegalMoves() {
		ok, snap := p.MakeMove(m)
		if !ok {
			continue
		}
		out[m.String()] = r.Count(p, depth-1)
		p.UndoMove(snap)
	}
	return out
}
