package board_test

import (
	"testing"

	"chess-rules/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", board.NewMove(12, 28).String())
	assert.Equal(t, "e7e8q", board.Move{From: 52, To: 60, Promotion: board.Queen}.String())
	assert.Equal(t, "a2a1n", board.Move{From: 8, To: 0, Promotion: board.Knight}.String())
	assert.Equal(t, "0000", board.NullMove.String())
}

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e7e8q")
	require.NoError(t, err)
	assert.Equal(t, board.Move{From: 52, To: 60, Promotion: board.Queen}, m)

	m, err = board.ParseMove(" G1F3 ")
	require.NoError(t, err)
	assert.Equal(t, board.NewMove(6, 21), m)

	m, err = board.ParseMove("0000")
	require.NoError(t, err)
	assert.Equal(t, board.NullMove, m)

	for _, bad := range []string{"", "e2", "e2e4e5", "i2e4", "e9e4", "e7e8k", "e7e8x"} {
		_, err := board.ParseMove(bad)
		assert.Error(t, err, bad)
	}
}

func TestFindMove(t *testing.T) {
	p := board.StartPosition()
	m, err := p.FindMove("b1c3")
	require.NoError(t, err)
	assert.Equal(t, board.NewMove(1, 18), m)

	_, err = p.FindMove("e2e5")
	assert.Error(t, err)
	_, err = p.FindMove("zz")
	assert.Error(t, err)
}

func TestPieceCodec(t *testing.T) {
	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			pc := board.NewPiece(c, pt)
			assert.NotEqual(t, board.NoPiece, pc)
			assert.Equal(t, pt, pc.Type())
			assert.Equal(t, c, pc.Color())
		}
	}
	assert.Equal(t, board.Piece(9), board.WhitePawn)
	assert.Equal(t, board.Piece(6), board.BlackKing)
	assert.Equal(t, board.NoPiece, board.NewPiece(board.White, board.NoPieceType))
	assert.Equal(t, "N", board.WhiteKnight.String())
	assert.Equal(t, "q", board.BlackQueen.String())
	assert.Equal(t, board.Black, board.White.Other())
}
