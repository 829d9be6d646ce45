package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names used in FieldError.
const (
	FieldPlacement = "placement"
	FieldSide      = "side to move"
	FieldCastling  = "castling"
	FieldEnPassant = "en passant"
	FieldHalfmove  = "halfmove clock"
	FieldFullmove  = "fullmove number"
	FieldRecord    = "record"
)

// FieldError reports one malformed FEN field.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid FEN %s %q: %s", e.Field, e.Value, e.Reason)
}

// LoadPosition parses a FEN string. Every malformed field is reported as a
// *FieldError; all of them are returned together in a *multierror.Error.
// The halfmove clock and fullmove number may be omitted.
func LoadPosition(fen string) (*Position, error) {
	var errs *multierror.Error
	fail := func(field, value, reason string) {
		errs = multierror.Append(errs, &FieldError{Field: field, Value: value, Reason: reason})
	}

	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		fail(FieldRecord, fen, fmt.Sprintf("want 4 to 6 fields, got %d", len(fields)))
		return nil, errs.ErrorOrNil()
	}

	p := newPosition()

	// 1. Piece placement, rank 8 first.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		fail(FieldPlacement, fields[0], fmt.Sprintf("want 8 ranks, got %d", len(ranks)))
	} else if reason := p.parsePlacement(ranks); reason != "" {
		fail(FieldPlacement, fields[0], reason)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		fail(FieldSide, fields[1], "must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				fail(FieldCastling, fields[2], fmt.Sprintf("unexpected %q", fields[2][i]))
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		switch {
		case err != nil:
			fail(FieldEnPassant, fields[3], "not a square")
		case sq.Rank() != 2 && sq.Rank() != 5:
			fail(FieldEnPassant, fields[3], "must be on the third or sixth rank")
		default:
			p.enPassant = sq
		}
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			fail(FieldHalfmove, fields[4], "not a non-negative integer")
		}
		p.halfmoveClock = n
	}

	// 6. Fullmove number
	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			fail(FieldFullmove, fields[5], "not a positive integer")
		} else {
			fullmove = n
		}
	}
	p.plyCount = fullmove*2 - int(p.sideToMove)

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	p.UpdateBitboards()
	return p, nil
}

// parsePlacement fills the squares and king cache. It returns a reason on
// failure, or "" on success.
func (p *Position) parsePlacement(ranks []string) string {
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc := pieceFromChar(ch)
			if pc == NoPiece {
				return fmt.Sprintf("unrecognized piece %q", ch)
			}
			if file >= 8 {
				return fmt.Sprintf("rank %d has more than 8 files", rank+1)
			}
			sq := SquareAt(rank, file)
			p.squares[sq] = pc
			if pc.Type() == King {
				if p.kingSquares[pc.Color()] != NoSquare {
					return fmt.Sprintf("more than one %s king", pc.Color())
				}
				p.kingSquares[pc.Color()] = sq
			}
			file++
		}
		if file != 8 {
			return fmt.Sprintf("rank %d does not have 8 files", rank+1)
		}
	}
	for _, c := range [2]Color{White, Black} {
		if p.kingSquares[c] == NoSquare {
			return fmt.Sprintf("missing %s king", c)
		}
	}
	return ""
}

// ToFen produces the FEN string of the position.
func (p *Position) ToFen() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[SquareAt(rank, file)]
			if pc == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pc.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	// 3. Castling rights
	if p.castling == NoCastling {
		sb.WriteByte('-')
	} else {
		for i, ch := range []byte("KQkq") {
			if p.castling.Has(CastlingRights(1) << uint(i)) {
				sb.WriteByte(ch)
			}
		}
	}

	// 4. En passant square
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	// 5, 6. Clocks
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.FullmoveNumber())
	return sb.String()
}
