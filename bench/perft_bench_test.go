package bench

import (
	"testing"

	"chess-rules/board"
	"chess-rules/perft"
	"chess-rules/ttable"
)

func benchPerft(b *testing.B, fen string, depth int, hashMB int) {
	p := load(b, fen)
	var runner perft.Runner
	if hashMB > 0 {
		runner.Cache = ttable.New(hashMB)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if runner.Cache != nil {
			runner.Cache.Clear()
		}
		_ = runner.Count(p, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.FENStartPos, 4, 0)
}

func BenchmarkPerft_Initial_D4_Hashed(b *testing.B) {
	benchPerft(b, board.FENStartPos, 4, 16)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3, 0)
}
