// Package crosscheck compares the board package's legal moves against two
// independent move generators, dragontoothmg and notnil/chess.
package crosscheck

import (
	"fmt"
	"strings"

	"chess-rules/board"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Reference names an external move generator.
type Reference string

const (
	Dragontooth Reference = "dragontoothmg"
	Notnil      Reference = "notnil/chess"
)

// Diff lists the moves one reference disagrees on.
type Diff struct {
	Reference Reference
	// Missing are moves the reference allows that board does not.
	Missing []string
	// Extra are moves board allows that the reference does not.
	Extra []string
}

// Empty reports whether the reference agreed completely.
func (d Diff) Empty() bool { return len(d.Missing) == 0 && len(d.Extra) == 0 }

func (d Diff) String() string {
	return fmt.Sprintf("%s: missing [%s] extra [%s]", d.Reference,
		strings.Join(d.Missing, " "), strings.Join(d.Extra, " "))
}

// Report is the result of comparing one position.
type Report struct {
	FEN   string
	Moves []string
	Diffs []Diff
}

// Agreed reports whether every reference produced the same move set.
func (r Report) Agreed() bool {
	for _, d := range r.Diffs {
		if !d.Empty() {
			return false
		}
	}
	return true
}

// DiscrepancyError describes a disagreement found in a position.
type DiscrepancyError struct {
	Report Report
}

func (e *DiscrepancyError) Error() string {
	parts := make([]string, 0, len(e.Report.Diffs))
	for _, d := range e.Report.Diffs {
		if !d.Empty() {
			parts = append(parts, d.String())
		}
	}
	return fmt.Sprintf("move sets differ at %q: %s", e.Report.FEN, strings.Join(parts, "; "))
}

// Compare generates legal moves for fen with every generator.
func Compare(fen string) (Report, error) {
	p, err := board.LoadPosition(fen)
	if err != nil {
		return Report{}, errors.Wrap(err, "crosscheck")
	}
	return ComparePosition(p)
}

// ComparePosition compares an already loaded position.
func ComparePosition(p *board.Position) (Report, error) {
	fen := p.ToFen()
	rep := Report{FEN: fen, Moves: moveStrings(p.LegalMoves())}

	dt, err := dragontoothMoves(fen)
	if err != nil {
		return rep, err
	}
	nn, err := notnilMoves(fen)
	if err != nil {
		return rep, err
	}
	rep.Diffs = []Diff{diff(Dragontooth, rep.Moves, dt), diff(Notnil, rep.Moves, nn)}
	return rep, nil
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

func dragontoothMoves(fen string) (moves []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dragontoothmg rejected %q: %v", fen, r)
		}
	}()
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		moves = append(moves, strings.ToLower(m.String()))
	}
	slices.Sort(moves)
	return moves, nil
}

func notnilMoves(fen string) ([]string, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "notnil/chess rejected %q", fen)
	}
	g := chess.NewGame(opt)
	var moves []string
	for _, m := range g.ValidMoves() {
		moves = append(moves, strings.ToLower(m.String()))
	}
	slices.Sort(moves)
	return moves, nil
}

// diff compares two sorted move lists.
func diff(ref Reference, ours, theirs []string) Diff {
	d := Diff{Reference: ref}
	for _, m := range theirs {
		if _, found := slices.BinarySearch(ours, m); !found {
			d.Missing = append(d.Missing, m)
		}
	}
	for _, m := range ours {
		if _, found := slices.BinarySearch(theirs, m); !found {
			d.Extra = append(d.Extra, m)
		}
	}
	return d
}
