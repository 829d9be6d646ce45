package board

import (
	"strings"

	"github.com/pkg/errors"
)

// Move is a start square, an end square and an optional promotion type.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NullMove is the zero-information move printed as "0000".
var NullMove = Move{From: NoSquare, To: NoSquare}

// NewMove constructs a non-promoting move.
func NewMove(from, to Square) Move { return Move{From: from, To: to} }

// String produces the long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if !m.From.Valid() || !m.To.Valid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if l := m.Promotion.Letter(); l != 0 {
		s += string(l)
	}
	return s
}

var promotionLetters = map[byte]PieceType{
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
}

// ParseSquare converts an algebraic square such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.Errorf("square %q out of range", s)
	}
	return SquareAt(int(rank-'1'), int(file-'a')), nil
}

// ParseMove converts a long algebraic string (e2e4, e7e8q, 0000) into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) < 4 || len(s) > 5 {
		return NullMove, errors.Errorf("invalid move length %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, errors.Wrapf(err, "move %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, errors.Wrapf(err, "move %q", s)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		pt, ok := promotionLetters[s[4]]
		if !ok {
			return NullMove, errors.Errorf("invalid promotion piece in %q", s)
		}
		m.Promotion = pt
	}
	return m, nil
}

// FindMove parses s and returns the matching legal move in this position.
func (p *Position) FindMove(s string) (Move, error) {
	m, err := ParseMove(s)
	if err != nil {
		return NullMove, err
	}
	for _, lm := range p.LegalMoves() {
		if lm == m {
			return lm, nil
		}
	}
	return NullMove, errors.Errorf("move %s is not legal in %s", m, p.ToFen())
}
