package perft

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"chess-rules/board"

	"github.com/pkg/errors"
)

// Case is one suite line: a position and its reference node counts.
type Case struct {
	FEN    string
	Counts map[int]uint64
}

// Result is the outcome of one (position, depth) check.
type Result struct {
	FEN   string
	Depth int
	Want  uint64
	Got   uint64
}

// Passed reports whether the counts agree.
func (r Result) Passed() bool { return r.Want == r.Got }

// ParseSuite reads EPD perft lines of the form
//
//	<fen> ;D1 20 ;D2 400 ;D3 8902
//
// Blank lines and lines starting with '#' are skipped.
func ParseSuite(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		c := Case{FEN: strings.TrimSpace(fields[0]), Counts: make(map[int]uint64)}
		for _, f := range fields[1:] {
			parts := strings.Fields(f)
			if len(parts) != 2 || len(parts[0]) < 2 || parts[0][0] != 'D' {
				return nil, errors.Errorf("line %d: malformed depth entry %q", lineNo, f)
			}
			depth, err := strconv.Atoi(parts[0][1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: depth", lineNo)
			}
			nodes, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: node count", lineNo)
			}
			c.Counts[depth] = nodes
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading perft suite")
	}
	return cases, nil
}

// RunSuite checks every case at each listed depth up to maxDepth.
func (r *Runner) RunSuite(cases []Case, maxDepth int) ([]Result, error) {
	var results []Result
	for _, c := range cases {
		p, err := board.LoadPosition(c.FEN)
		if err != nil {
			return results, errors.Wrapf(err, "suite position %q", c.FEN)
		}
		for depth := 1; depth <= maxDepth; depth++ {
			want, ok := c.Counts[depth]
			if !ok {
				continue
			}
			results = append(results, Result{
				FEN:   c.FEN,
				Depth: depth,
				Want:  want,
				Got:   r.Count(p, depth),
			})
		}
	}
	return results, nil
}
