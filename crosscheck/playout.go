package crosscheck

import (
	"math/rand"

	"chess-rules/board"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Playout plays up to plies random legal moves from fen. At every ply it
// compares move sets with the references, checks the bitboard invariant,
// the FEN round trip and that undoing each legal move restores the
// position exactly. All problems found are returned together; the game
// continues past a discrepancy so one run reports as much as possible.
func Playout(rng *rand.Rand, fen string, plies int) error {
	p, err := board.LoadPosition(fen)
	if err != nil {
		return errors.Wrap(err, "playout")
	}
	var errs *multierror.Error
	for ply := 0; ply < plies; ply++ {
		errs = multierror.Append(errs, checkPosition(p)...)

		rep, err := ComparePosition(p)
		if err != nil {
			errs = multierror.Append(errs, err)
		} else if !rep.Agreed() {
			errs = multierror.Append(errs, &DiscrepancyError{Report: rep})
		}

		legal := p.LegalMoves()
		if len(legal) == 0 || p.IsDrawBy50() {
			break
		}
		m := legal[rng.Intn(len(legal))]
		if ok, _ := p.MakeMove(m); !ok {
			errs = multierror.Append(errs, errors.Errorf("legal move %s rejected at %q", m, p.ToFen()))
			break
		}
	}
	return errs.ErrorOrNil()
}

// checkPosition verifies the invariants that must hold between moves.
func checkPosition(p *board.Position) []error {
	var errs []error
	fen := p.ToFen()
	if !p.Validate() {
		errs = append(errs, errors.Errorf("bitboards inconsistent at %q", fen))
	}
	if q, err := board.LoadPosition(fen); err != nil {
		errs = append(errs, errors.Wrapf(err, "reloading %q", fen))
	} else if q.ToFen() != fen {
		errs = append(errs, errors.Errorf("FEN round trip %q -> %q", fen, q.ToFen()))
	}
	before := p.Clone()
	for _, m := range p.GenerateMoves() {
		ok, snap := p.MakeMove(m)
		if !ok {
			if !p.Equal(before) {
				errs = append(errs, errors.Errorf("rejected move %s changed %q", m, fen))
			}
			continue
		}
		p.UndoMove(snap)
		if !p.Equal(before) {
			errs = append(errs, errors.Errorf("undo of %s did not restore %q", m, fen))
			*p = *before.Clone()
		}
	}
	return errs
}
