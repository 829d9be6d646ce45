package perft_test

import (
	"os"
	"strings"
	"testing"

	"chess-rules/board"
	"chess-rules/perft"
	"chess-rules/ttable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func load(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.LoadPosition(fen)
	require.NoError(t, err)
	return p
}

func TestPerftInitialPosition(t *testing.T) {
	p := board.StartPosition()
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, nodes := range want {
		if depth == 4 && testing.Short() {
			continue
		}
		assert.Equal(t, nodes, perft.Count(p, depth), "depth %d", depth)
	}
	assert.Equal(t, board.FENStartPos, p.ToFen(), "perft must leave the position untouched")
}

func TestPerftKiwipete(t *testing.T) {
	p := load(t, kiwipete)
	assert.Equal(t, uint64(48), perft.Count(p, 1))
	assert.Equal(t, uint64(2039), perft.Count(p, 2))
	if !testing.Short() {
		assert.Equal(t, uint64(97862), perft.Count(p, 3))
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	p := load(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	assert.Equal(t, uint64(5), perft.Count(p, 1))
	assert.Equal(t, uint64(19), perft.Count(p, 2))
}

func TestPerftPromotionPosition(t *testing.T) {
	p := load(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	assert.Equal(t, uint64(11), perft.Count(p, 1))
}

func TestDivideSumsToCount(t *testing.T) {
	p := load(t, kiwipete)
	div := perft.Divide(p, 2)
	assert.Len(t, div, 48)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	assert.Equal(t, uint64(2039), sum)
	assert.Contains(t, div, "e1g1")
	assert.Contains(t, div, "e1c1")
	assert.Empty(t, perft.Divide(p, 0))
}

func TestCachedPerftMatchesPlain(t *testing.T) {
	fens := []string{board.FENStartPos, kiwipete, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"}
	runner := perft.Runner{Cache: ttable.New(4)}
	for _, fen := range fens {
		p := load(t, fen)
		want := perft.Count(p, 3)
		assert.Equal(t, want, runner.Count(p, 3), fen)
		// Second pass is answered largely from the cache.
		assert.Equal(t, want, runner.Count(p, 3), fen)
	}
	assert.NotZero(t, runner.Cache.Stats().Hits)
}

func TestStandardSuite(t *testing.T) {
	f, err := os.Open("testdata/standard.epd")
	require.NoError(t, err)
	defer f.Close()

	cases, err := perft.ParseSuite(f)
	require.NoError(t, err)
	require.Len(t, cases, 6)

	maxDepth := 3
	if testing.Short() {
		maxDepth = 2
	}
	runner := perft.Runner{Cache: ttable.New(8)}
	results, err := runner.RunSuite(cases, maxDepth)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, r.Passed(), "D%d %s: want %d got %d", r.Depth, r.FEN, r.Want, r.Got)
	}
}

func TestParseSuite(t *testing.T) {
	in := "# comment\n\n" + board.FENStartPos + " ;D1 20 ;D2 400\n"
	cases, err := perft.ParseSuite(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, board.FENStartPos, cases[0].FEN)
	assert.Equal(t, map[int]uint64{1: 20, 2: 400}, cases[0].Counts)

	for _, bad := range []string{
		board.FENStartPos + " ;X1 20",
		board.FENStartPos + " ;D1",
		board.FENStartPos + " ;Dx 20",
		board.FENStartPos + " ;D1 lots",
	} {
		_, err := perft.ParseSuite(strings.NewReader(bad))
		assert.Error(t, err, bad)
	}
}

func TestRunSuiteRejectsBadFEN(t *testing.T) {
	var runner perft.Runner
	_, err := runner.RunSuite([]perft.Case{{FEN: "not a fen", Counts: map[int]uint64{1: 1}}}, 1)
	assert.Error(t, err)
}
