package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"chess-rules/board"
	"chess-rules/perft"
	"chess-rules/ttable"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is set)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	hashMB := flag.Int("hash", 0, "Perft cache size in MB (0 disables the cache)")
	suite := flag.String("suite", "", "EPD perft suite to verify instead of a single position")
	maxDepth := flag.Int("maxdepth", 4, "Deepest suite depth to verify")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("perft: ")

	var runner perft.Runner
	if *hashMB > 0 {
		runner.Cache = ttable.New(*hashMB)
	}

	stopProfile := startProfile(*cpuProf)
	defer stopProfile()

	if *suite != "" {
		code := runSuite(&runner, *suite, *maxDepth)
		stopProfile()
		os.Exit(code)
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.LoadPosition(*fen)
	if err != nil {
		log.Printf("LoadPosition error: %v", err)
		os.Exit(2)
	}

	if *divide {
		div := runner.Divide(pos, *depth)
		moves := maps.Keys(div)
		slices.Sort(moves)
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += runner.Count(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	if runner.Cache != nil {
		st := runner.Cache.Stats()
		log.Printf("cache probes=%d hits=%d stores=%d", st.Probes, st.Hits, st.Stores)
	}
}

func runSuite(runner *perft.Runner, path string, maxDepth int) int {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("opening suite: %v", err)
		return 2
	}
	defer f.Close()

	cases, err := perft.ParseSuite(f)
	if err != nil {
		log.Printf("parsing suite: %v", err)
		return 2
	}
	results, err := runner.RunSuite(cases, maxDepth)
	if err != nil {
		log.Printf("running suite: %v", err)
		return 2
	}
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.Passed() {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-4s D%d want %d got %d  %s\n", status, r.Depth, r.Want, r.Got, r.FEN)
	}
	fmt.Printf("%d/%d checks passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return 1
	}
	return 0
}

// startProfile starts CPU profiling when path is set and returns the stop func.
func startProfile(path string) func() {
	if path == "" {
		return func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("creating cpuprofile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatalf("start cpu profile: %v", err)
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}
