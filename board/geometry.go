package board

import (
	"math/bits"
	"sync"
)

// Square indexes the board rank-major: a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int

const NoSquare Square = -1

// Rank returns 0 for the first rank through 7 for the eighth.
func (sq Square) Rank() int { return int(sq) >> 3 }

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 7 }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// SquareAt returns the square on the given rank and file.
func SquareAt(rank, file int) Square { return Square(rank*8 + file) }

// Direction indexes the eight ray directions. Even directions step toward
// higher square indices, odd directions toward lower ones.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthWest
	SouthEast
	NorthEast
	SouthWest
)

// Offsets holds the square index delta of one step in each direction.
var Offsets = [8]int{8, -8, 1, -1, 7, -7, 9, -9}

var (
	orthogonals = [4]Direction{North, South, East, West}
	diagonals   = [4]Direction{NorthWest, SouthEast, NorthEast, SouthWest}
	allDirs     = [8]Direction{North, South, East, West, NorthWest, SouthEast, NorthEast, SouthWest}
)

// Knight jumps as (rank, file) deltas.
var knightDeltas = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// Geometry holds the precomputed edge distances and ray masks shared by
// every Position. It is read-only once built.
type Geometry struct {
	// EdgeDistance is the number of steps from a square to the board edge.
	EdgeDistance [64][8]int
	// RayMask holds every square strictly beyond the source square up to the edge.
	RayMask [64][8]uint64
}

var (
	geometryOnce sync.Once
	geometry     *Geometry
)

// Tables returns the process-wide geometry, building it on first use.
func Tables() *Geometry {
	geometryOnce.Do(func() { geometry = BuildGeometry() })
	return geometry
}

// BuildGeometry computes a fresh set of tables. Positions share the one
// returned by Tables; this is exported for tests and tools.
func BuildGeometry() *Geometry {
	g := &Geometry{}
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		north, south := 7-rank, rank
		east, west := 7-file, file

		g.EdgeDistance[sq][North] = north
		g.EdgeDistance[sq][South] = south
		g.EdgeDistance[sq][East] = east
		g.EdgeDistance[sq][West] = west
		g.EdgeDistance[sq][NorthWest] = min(north, west)
		g.EdgeDistance[sq][SouthEast] = min(south, east)
		g.EdgeDistance[sq][NorthEast] = min(north, east)
		g.EdgeDistance[sq][SouthWest] = min(south, west)

		for _, dir := range allDirs {
			var ray uint64
			t := sq
			for step := 0; step < g.EdgeDistance[sq][dir]; step++ {
				t += Offsets[dir]
				ray |= uint64(1) << uint(t)
			}
			g.RayMask[sq][dir] = ray
		}
	}
	return g
}

// SlidingAttacks returns the squares a slider on sq attacks along dir,
// up to and including the first occupied square.
func (g *Geometry) SlidingAttacks(sq Square, dir Direction, occupied uint64) uint64 {
	ray := g.RayMask[sq][dir]
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	var first int
	if dir&1 == 0 {
		first = bits.TrailingZeros64(blockers)
	} else {
		first = 63 - bits.LeadingZeros64(blockers)
	}
	return ray ^ g.RayMask[first][dir]
}

// firstBlocker returns the nearest occupied square along dir, or NoSquare.
func (g *Geometry) firstBlocker(sq Square, dir Direction, occupied uint64) Square {
	blockers := g.RayMask[sq][dir] & occupied
	if blockers == 0 {
		return NoSquare
	}
	if dir&1 == 0 {
		return Square(bits.TrailingZeros64(blockers))
	}
	return Square(63 - bits.LeadingZeros64(blockers))
}

// knightTarget returns the square a knight on sq reaches with delta i.
func knightTarget(sq Square, i int) (Square, bool) {
	r := sq.Rank() + knightDeltas[i][0]
	f := sq.File() + knightDeltas[i][1]
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return NoSquare, false
	}
	return SquareAt(r, f), true
}

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return uint64(1) << uint(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) Square {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return Square(idx)
}
