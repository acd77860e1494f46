// Command play is a terminal game against the engine.
package main

import (
	"flag"
	"os"

	"graph-chess/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	depth := flag.Int("depth", 0, "search depth in plies (0 = saved preference)")
	color := flag.String("color", "", "your colour: white, black or random (empty = saved preference)")
	fen := flag.String("fen", "", "start from this FEN instead of the initial position")
	dbDir := flag.String("db", "", "database directory (empty = user data dir)")
	noDB := flag.Bool("nodb", false, "do not load or save preferences and statistics")
	vary := flag.Bool("vary", false, "pick randomly among near-equal engine moves")
	noTT := flag.Bool("nott", false, "search without the transposition table")
	verbose := flag.Bool("v", false, "log search statistics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var store *storage.Storage
	var err error
	switch {
	case *noDB:
		store, err = storage.Open("")
	case *dbDir != "":
		store, err = storage.Open(*dbDir)
	default:
		store, err = storage.OpenDefault()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Warn().Err(err).Msg("load preferences")
		prefs = storage.DefaultPreferences()
	}
	if *depth > 0 {
		prefs.Depth = *depth
	}
	if *color != "" {
		c, err := storage.ParsePlayerColor(*color)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -color")
		}
		prefs.PlayerColor = c
	}

	cfg := config{
		Prefs: prefs,
		FEN:   *fen,
		Vary:  *vary,
		UseTT: !*noTT,
	}
	if err := newSession(os.Stdin, os.Stdout, store, cfg, log.Logger).run(); err != nil {
		log.Fatal().Err(err).Msg("play")
	}
}
