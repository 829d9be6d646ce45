package board_test

import (
	"testing"

	"chess-rules/board"

	"github.com/stretchr/testify/require"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustLoad(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.LoadPosition(fen)
	require.NoError(t, err, "LoadPosition(%q)", fen)
	return p
}

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	square, err := board.ParseSquare(s)
	require.NoError(t, err)
	return square
}

// play makes a sequence of long algebraic moves, failing on any illegal one.
func play(t *testing.T, p *board.Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := p.FindMove(s)
		require.NoError(t, err)
		ok, _ := p.MakeMove(m)
		require.True(t, ok, "MakeMove(%s)", s)
	}
}

func moveSet(moves []board.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}
