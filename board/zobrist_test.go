package board_test

import (
	"testing"

	"chess-rules/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashStable(t *testing.T) {
	p := mustLoad(t, kiwipete)
	assert.Equal(t, p.Hash(), p.Hash())
	assert.Equal(t, p.StateKey(), p.StateKey())
	assert.Equal(t, p.Hash(), mustLoad(t, kiwipete).Hash())
}

func TestHashCoversEveryOccupiedSquare(t *testing.T) {
	a := mustLoad(t, "4k3/8/8/8/8/8/8/RN2K3 w - - 0 1")
	b := mustLoad(t, "4k3/8/8/8/8/8/8/NR2K3 w - - 0 1")
	assert.NotEqual(t, a.Hash(), b.Hash())

	keys := board.Keys()
	var want uint64
	for s := 0; s < 64; s++ {
		want ^= keys.Pieces[s][a.PieceAt(board.Square(s))]
	}
	assert.Equal(t, want, a.Hash())
}

func TestHashFollowsMoves(t *testing.T) {
	p := board.StartPosition()
	start := p.Hash()
	m, err := p.FindMove("g1f3")
	require.NoError(t, err)
	ok, snap := p.MakeMove(m)
	require.True(t, ok)
	assert.NotEqual(t, start, p.Hash())
	p.UndoMove(snap)
	assert.Equal(t, start, p.Hash())

	// Knights out and back: same placement, same hash.
	play(t, p, "g1f3", "g8f6", "f3g1", "f6g8")
	assert.Equal(t, start, p.Hash())
}

func TestStateKeyDistinguishesSideAndRights(t *testing.T) {
	w := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	n := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	assert.Equal(t, w.Hash(), b.Hash(), "placement hash ignores side to move")
	assert.NotEqual(t, w.StateKey(), b.StateKey())
	assert.NotEqual(t, w.StateKey(), n.StateKey())
}

func TestZobristSeeded(t *testing.T) {
	assert.Equal(t, *board.NewZobrist(7), *board.NewZobrist(7))
	assert.NotEqual(t, board.NewZobrist(7).Pieces, board.NewZobrist(8).Pieces)
}
