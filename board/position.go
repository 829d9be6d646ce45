package board

import (
	"math/bits"
	"strings"
)

// CastlingRights is a bit set of the four castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is held.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

// castleRule describes one castling right: the king's and rook's start and
// end squares and the squares that must be empty between king and rook.
type castleRule struct {
	right    CastlingRights
	color    Color
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  uint64
	transit  Square
}

var castleRules = [4]castleRule{
	{WhiteKingside, White, 4, 6, 7, 5, bb(5) | bb(6), 5},
	{WhiteQueenside, White, 4, 2, 0, 3, bb(1) | bb(2) | bb(3), 3},
	{BlackKingside, Black, 60, 62, 63, 61, bb(61) | bb(62), 61},
	{BlackQueenside, Black, 60, 58, 56, 59, bb(57) | bb(58) | bb(59), 59},
}

// rightsLostAt maps a king or rook home square to the rights that vanish
// once anything leaves or lands on it.
var rightsLostAt = [64]CastlingRights{
	0:  WhiteQueenside,
	4:  WhiteKingside | WhiteQueenside,
	7:  WhiteKingside,
	56: BlackQueenside,
	60: BlackKingside | BlackQueenside,
	63: BlackKingside,
}

func colorRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// Position is the mutable board state. The squares array is the source of
// truth; the bitboards are derived from it by UpdateBitboards after every
// mutation.
type Position struct {
	squares     [64]Piece
	kingSquares [2]Square

	// Derived views, indexed by color and by color and piece type - 1.
	colored       [2]uint64
	coloredPieces [2][6]uint64
	occupied      uint64
	empty         uint64

	sideToMove    Color
	castling      CastlingRights
	enPassant     Square
	halfmoveClock int
	plyCount      int

	geo  *Geometry
	keys *Zobrist
}

// newPosition returns an empty board wired to the shared tables. Every
// constructor goes through here so the tables are always built first.
func newPosition() *Position {
	return &Position{
		geo:         Tables(),
		keys:        Keys(),
		kingSquares: [2]Square{NoSquare, NoSquare},
		enPassant:   NoSquare,
		empty:       ^uint64(0),
		plyCount:    1,
	}
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	p, err := LoadPosition(FENStartPos)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone returns an independent deep copy, e.g. for a search worker.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// UpdateBitboards rebuilds every derived bitboard from the squares array.
// The king cache is maintained by MakeMove and the FEN loader.
func (p *Position) UpdateBitboards() {
	p.colored = [2]uint64{}
	p.coloredPieces = [2][6]uint64{}
	for sq := 0; sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece {
			continue
		}
		c := pc.Color()
		bit := uint64(1) << uint(sq)
		p.colored[c] |= bit
		p.coloredPieces[c][pc.Type()-1] |= bit
	}
	p.occupied = p.colored[White] | p.colored[Black]
	p.empty = ^p.occupied
}

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

// KingSquare returns the cached square of the given side's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquares[c] }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the rights still held.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassantTarget returns the square a pawn may capture onto this ply, or NoSquare.
func (p *Position) EnPassantTarget() Square { return p.enPassant }

// HalfmoveClock returns the plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// PlyCount returns the internal ply counter (fullmove*2 - side to move).
func (p *Position) PlyCount() int { return p.plyCount }

// FullmoveNumber returns the FEN full move counter.
func (p *Position) FullmoveNumber() int { return (p.plyCount + int(p.sideToMove)) / 2 }

// Occupied returns the bitboard of all occupied squares.
func (p *Position) Occupied() uint64 { return p.occupied }

// Empty returns the bitboard of all empty squares.
func (p *Position) Empty() uint64 { return p.empty }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (p *Position) ColorOccupancy(c Color) uint64 { return p.colored[c] }

// Pieces returns the bitboard of one side's pieces of the given type.
func (p *Position) Pieces(c Color, pt PieceType) uint64 {
	if pt == NoPieceType || pt > King {
		return 0
	}
	return p.coloredPieces[c][pt-1]
}

// Validate checks internal consistency between the squares array, the
// derived bitboards and the king cache.
func (p *Position) Validate() bool {
	var colored [2]uint64
	var pieces [2][6]uint64
	kings := [2]Square{NoSquare, NoSquare}
	for sq := 0; sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece {
			continue
		}
		if pc.Type() < Pawn || pc.Type() > King {
			return false
		}
		c := pc.Color()
		bit := uint64(1) << uint(sq)
		colored[c] |= bit
		pieces[c][pc.Type()-1] |= bit
		if pc.Type() == King {
			if kings[c] != NoSquare {
				return false
			}
			kings[c] = Square(sq)
		}
	}
	if colored != p.colored || pieces != p.coloredPieces || kings != p.kingSquares {
		return false
	}
	for c := range p.coloredPieces {
		var union uint64
		for _, b := range p.coloredPieces[c] {
			union |= b
		}
		if union != p.colored[c] {
			return false
		}
	}
	if p.occupied != p.colored[White]|p.colored[Black] {
		return false
	}
	return p.occupied&p.empty == 0 && p.occupied|p.empty == ^uint64(0)
}

// Equal compares the observable state of two positions field by field.
func (p *Position) Equal(o *Position) bool {
	return p.squares == o.squares &&
		p.kingSquares == o.kingSquares &&
		p.colored == o.colored &&
		p.coloredPieces == o.coloredPieces &&
		p.occupied == o.occupied &&
		p.empty == o.empty &&
		p.sideToMove == o.sideToMove &&
		p.castling == o.castling &&
		p.enPassant == o.enPassant &&
		p.halfmoveClock == o.halfmoveClock &&
		p.plyCount == o.plyCount
}

// PieceCount returns the number of pieces on the board.
func (p *Position) PieceCount() int { return bits.OnesCount64(p.occupied) }

// String draws the board from White's side, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(p.squares[SquareAt(rank, file)].Char())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
