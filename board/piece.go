package board

// Color is the side owning a piece.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece is a square occupant. The type sits in the low 3 bits and the
// color in bit 3, so
//   - piece & 7 gives the type in [1..6]
//   - piece & 8 != 0 indicates White
//
// Zero is the empty square and never collides with a real piece.
type Piece uint8

const (
	NoPiece Piece = 0

	BlackPawn   Piece = 1
	BlackKnight Piece = 2
	BlackBishop Piece = 3
	BlackRook   Piece = 4
	BlackQueen  Piece = 5
	BlackKing   Piece = 6

	WhitePawn   Piece = 1 | 8
	WhiteKnight Piece = 2 | 8
	WhiteBishop Piece = 3 | 8
	WhiteRook   Piece = 4 | 8
	WhiteQueen  Piece = 5 | 8
	WhiteKing   Piece = 6 | 8
)

// pieceCodes is the number of distinct codes a square can hold, empty included.
const pieceCodes = 15

// NewPiece combines a side and a type into a piece code.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports Black.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// Is reports whether p is a piece of the given side and type.
func (p Piece) Is(c Color, pt PieceType) bool { return p == NewPiece(c, pt) }

const pieceLetters = " pnbrqk"

// Char returns the FEN letter of the piece, uppercase for White.
func (p Piece) Char() byte {
	if p == NoPiece || p.Type() > King {
		return '.'
	}
	ch := pieceLetters[p.Type()]
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// pieceFromChar converts a FEN letter to a piece code.
func pieceFromChar(ch byte) Piece {
	c := Black
	if ch >= 'A' && ch <= 'Z' {
		c = White
		ch += 'a' - 'A'
	}
	for t := Pawn; t <= King; t++ {
		if pieceLetters[t] == ch {
			return NewPiece(c, t)
		}
	}
	return NoPiece
}

// Letter returns the lowercase long algebraic promotion letter.
func (pt PieceType) Letter() byte {
	if pt == NoPieceType || pt > King {
		return 0
	}
	return pieceLetters[pt]
}
