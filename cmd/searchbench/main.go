package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"graph-chess/engine"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	noTT := flag.Bool("nott", false, "disable the transposition table")
	verbose := flag.Bool("v", false, "log per-search statistics")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := gm.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := engine.NewPosition(fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}

	searcher := engine.NewSearcher(
		engine.WithTransTable(!*noTT),
		engine.WithLogger(log.Logger),
	)

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d tt=%v\n", fen, *depthFlag, *repeatFlag, !*noTT)

	var nodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		res, err := searcher.FindBestMove(pos, *depthFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("search failed")
		}
		nodes += res.Stats.Nodes + res.Stats.QNodes
		fmt.Printf("iteration %d: bestmove %v score %s nodes=%d time=%v tt-hitrate=%.2f\n",
			i+1, res.BestMove, engine.UCIScore(res.Score), res.Stats.Nodes+res.Stats.QNodes,
			res.Stats.Elapsed, res.Stats.TT.HitRate())
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nodes: %d  nps: %.0f\n", totalElapsed, nodes, float64(nodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
