package board

import (
	"math/rand"
	"sync"
)

// Zobrist holds the random keys used to fingerprint positions.
type Zobrist struct {
	// Pieces is indexed by square and piece code; column 0 is the empty square.
	Pieces [64][pieceCodes]uint64

	Castling      [16]uint64
	EnPassantFile [8]uint64
	Side          uint64
}

var (
	zobristOnce sync.Once
	zobrist     *Zobrist
)

// Keys returns the process-wide Zobrist table, generating it on first use.
func Keys() *Zobrist {
	zobristOnce.Do(func() { zobrist = NewZobrist(0xC0DE) })
	return zobrist
}

// NewZobrist fills a table from a seeded non-cryptographic source.
func NewZobrist(seed int64) *Zobrist {
	rnd := rand.New(rand.NewSource(seed))
	z := &Zobrist{}
	for sq := 0; sq < 64; sq++ {
		for p := 0; p < pieceCodes; p++ {
			z.Pieces[sq][p] = rnd.Uint64()
		}
	}
	for cr := range z.Castling {
		z.Castling[cr] = rnd.Uint64()
	}
	for f := range z.EnPassantFile {
		z.EnPassantFile[f] = rnd.Uint64()
	}
	z.Side = rnd.Uint64()
	return z
}

// Hash XORs the key of every square's occupant, empty squares included.
// It covers piece placement only; see StateKey for a key that also
// distinguishes side to move, castling and en passant.
func (p *Position) Hash() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		key ^= p.keys.Pieces[sq][p.squares[sq]]
	}
	return key
}

// StateKey extends Hash with the side to move, castling rights and en
// passant file. Caches and repetition checks use it.
func (p *Position) StateKey() uint64 {
	key := p.Hash() ^ p.keys.Castling[p.castling]
	if p.sideToMove == Black {
		key ^= p.keys.Side
	}
	if p.enPassant != NoSquare {
		key ^= p.keys.EnPassantFile[p.enPassant.File()]
	}
	return key
}
