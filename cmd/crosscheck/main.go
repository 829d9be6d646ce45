package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"chess-rules/board"
	"chess-rules/crosscheck"
)

var (
	fenFlag   = flag.String("fen", board.FENStartPos, "starting position for every game")
	gamesFlag = flag.Int("games", 10, "number of random games to play")
	pliesFlag = flag.Int("plies", 200, "maximum plies per game")
	seedFlag  = flag.Int64("seed", 0, "random seed (0 uses the clock)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d, %d games of up to %d plies from %q", seed, *gamesFlag, *pliesFlag, *fenFlag)
	rng := rand.New(rand.NewSource(seed))

	failed := 0
	for i := 0; i < *gamesFlag; i++ {
		if err := crosscheck.Playout(rng, *fenFlag, *pliesFlag); err != nil {
			failed++
			log.Printf("game %d: %v", i+1, err)
		}
	}
	if failed > 0 {
		log.Printf("%d/%d games reported discrepancies", failed, *gamesFlag)
		os.Exit(1)
	}
	log.Printf("all %d games agreed", *gamesFlag)
}
