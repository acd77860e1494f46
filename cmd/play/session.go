package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"graph-chess/engine"
	"graph-chess/graph"
	"graph-chess/storage"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// varyMargin is how far below the best score a move may be and still be
// picked when varying play.
const varyMargin = 15

type config struct {
	Prefs *storage.Preferences
	FEN   string
	Vary  bool
	UseTT bool
}

type session struct {
	in       *bufio.Scanner
	out      io.Writer
	store    *storage.Storage
	prefs    *storage.Preferences
	logger   zerolog.Logger
	searcher *engine.Searcher

	pos      *engine.Position
	startFEN string
	human    gm.Color
	vary     bool
	started  time.Time
}

func newSession(in io.Reader, out io.Writer, store *storage.Storage, cfg config, logger zerolog.Logger) *session {
	return &session{
		in:       bufio.NewScanner(in),
		out:      out,
		store:    store,
		prefs:    cfg.Prefs,
		logger:   logger,
		searcher: engine.NewSearcher(engine.WithTransTable(cfg.UseTT), engine.WithLogger(logger)),
		startFEN: cfg.FEN,
		vary:     cfg.Vary,
	}
}

func (s *session) run() error {
	pos := engine.StartPosition()
	if s.startFEN != "" {
		p, err := engine.NewPosition(s.startFEN)
		if err != nil {
			return err
		}
		pos = p
	}
	s.pos = pos
	s.startFEN = pos.FEN()
	s.human = s.resolveColor(s.prefs.PlayerColor)
	s.started = time.Now()

	fmt.Fprintf(s.out, "You play %s at depth %d. Type \"help\" for commands.\n", colorName(s.human), s.prefs.Depth)
	s.printBoard()
	for {
		if outcome := s.pos.Outcome(); outcome.Over() {
			return s.finish(outcome)
		}
		if s.pos.SideToMove() != s.human {
			if err := s.engineMove(); err != nil {
				return err
			}
			s.printBoard()
			continue
		}

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		if quit := s.command(strings.TrimSpace(s.in.Text())); quit {
			return nil
		}
	}
}

func (s *session) resolveColor(c storage.PlayerColor) gm.Color {
	switch c {
	case storage.ColorBlack:
		return gm.Black
	case storage.ColorRandom:
		if frand.Intn(2) == 1 {
			return gm.Black
		}
	}
	return gm.White
}

// command handles one line of input. It returns true when the player quits.
func (s *session) command(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Bye.")
		return true
	case "help", "?":
		s.printHelp()
	case "u", "undo":
		s.undo()
	case "board", "b":
		s.printBoard()
	case "fen":
		fmt.Fprintln(s.out, s.pos.FEN())
	case "moves":
		fmt.Fprintln(s.out, strings.Join(s.moveHistory(), " "))
	case "eval":
		ev := s.searcher.Evaluator()
		fmt.Fprintln(s.out, ev.Breakdown(s.pos))
		fmt.Fprintln(s.out, "eval", engine.FormatPawns(ev.Evaluate(s.pos)))
	case "thoughts":
		s.prefs.ShowThoughts = !s.prefs.ShowThoughts
		fmt.Fprintln(s.out, "show thoughts:", s.prefs.ShowThoughts)
	case "knight":
		s.knight(fields[1:])
	case "attacks":
		s.attacks(fields[1:])
	case "stats":
		s.printStats()
	case "games":
		s.printGames()
	default:
		s.humanMove(fields[0])
	}
	return false
}

func (s *session) humanMove(text string) {
	m, err := engine.ParseSAN(s.pos, text)
	if err != nil {
		fmt.Fprintf(s.out, "Illegal move %q. Try again.\n", text)
		return
	}
	san := engine.SAN(s.pos, m)
	if !s.pos.Make(m) {
		fmt.Fprintf(s.out, "Illegal move %q. Try again.\n", text)
		return
	}
	fmt.Fprintln(s.out, "You play", san)
	s.printBoard()
}

func (s *session) engineMove() error {
	res, err := s.searcher.FindBestMove(s.pos, s.prefs.Depth)
	if err != nil {
		return err
	}
	if s.prefs.ShowThoughts {
		thoughts := lo.Map(res.Top, func(me engine.MoveEvaluation, _ int) string {
			return me.Notation + " " + engine.FormatPawns(me.Score)
		})
		fmt.Fprintln(s.out, "Engine thinks:", strings.Join(thoughts, ", "))
	}

	choice := MoveChoice(res, s.vary)
	san := engine.SAN(s.pos, choice.Move)
	if !s.pos.Make(choice.Move) {
		return fmt.Errorf("engine produced illegal move %s", choice.Move)
	}
	fmt.Fprintf(s.out, "Engine plays %s (%s)\n", san, engine.FormatPawns(choice.Score))
	return nil
}

// MoveChoice returns the best move, or with vary a random top move within
// varyMargin of it. Mating lines are never varied.
func MoveChoice(res engine.Result, vary bool) engine.MoveEvaluation {
	best := engine.MoveEvaluation{Move: res.BestMove, Score: res.Score}
	if !vary || len(res.Top) < 2 || engine.IsMateScore(res.Score) {
		return best
	}
	near := lo.Filter(res.Top, func(me engine.MoveEvaluation, _ int) bool {
		return me.Score >= res.Score-varyMargin
	})
	if len(near) == 0 {
		return best
	}
	return near[frand.Intn(len(near))]
}

// undo takes back moves until it is the player's turn again.
func (s *session) undo() {
	if s.pos.Plies() == 0 {
		fmt.Fprintln(s.out, "Nothing to undo.")
		return
	}
	s.pos.Unmake()
	if s.pos.SideToMove() != s.human && s.pos.Plies() > 0 {
		s.pos.Unmake()
	}
	s.printBoard()
}

func (s *session) knight(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: knight <from> <to>")
		return
	}
	from, err := graph.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	to, err := graph.ParseSquare(args[1])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	path, err := graph.KnightPath(from, to)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "%s (%d moves)\n", strings.Join(graph.SquareNames(path), " -> "), len(path)-1)
}

func (s *session) attacks(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: attacks <square>")
		return
	}
	sq, err := graph.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	set, err := graph.AttackSet(s.pos, sq)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if len(set) == 0 {
		fmt.Fprintln(s.out, "no attacks from", args[0])
		return
	}
	fmt.Fprintln(s.out, strings.Join(graph.SquareNames(set), " "))
}

// moveHistory is the SAN of every move played, replayed from the start.
func (s *session) moveHistory() []string {
	replay, err := engine.NewPosition(s.startFEN)
	if err != nil {
		return nil
	}
	var sans []string
	for _, m := range s.pos.Played() {
		sans = append(sans, engine.SAN(replay, m))
		replay.Make(m)
	}
	return sans
}

func (s *session) finish(outcome engine.Outcome) error {
	switch outcome.Termination {
	case engine.TerminationCheckmate:
		fmt.Fprintln(s.out, "Checkmate! Game Over.")
		if outcome.Winner == s.human {
			fmt.Fprintln(s.out, "You win!")
		} else {
			fmt.Fprintln(s.out, "The engine wins.")
		}
	case engine.TerminationStalemate:
		fmt.Fprintln(s.out, "Stalemate!")
	default:
		fmt.Fprintf(s.out, "Game Over: %s.\n", outcome.Termination)
	}
	fmt.Fprintln(s.out, "Result:", outcome.Result())

	if s.store == nil {
		return nil
	}
	result := storage.GameResult{
		Won:      !outcome.Draw() && outcome.Winner == s.human,
		Draw:     outcome.Draw(),
		Depth:    s.prefs.Depth,
		Duration: time.Since(s.started),
	}
	if err := s.store.RecordGame(result); err != nil {
		return err
	}
	rec := &storage.GameRecord{
		StartFEN:    s.startFEN,
		Moves:       lo.Map(s.pos.Played(), func(m gm.Move, _ int) string { return m.String() }),
		Result:      outcome.Result(),
		Termination: outcome.Termination.String(),
		PlayerColor: playerColor(s.human),
		Depth:       s.prefs.Depth,
	}
	if err := s.store.SaveGame(rec); err != nil {
		return err
	}
	if err := s.store.SavePreferences(s.prefs); err != nil {
		return err
	}
	s.logger.Info().Str("result", rec.Result).Str("termination", rec.Termination).Msg("game-recorded")
	return nil
}

func (s *session) printStats() {
	if s.store == nil {
		return
	}
	stats, err := s.store.LoadStats()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "played %d  won %d  lost %d  drawn %d  win rate %.1f%%  best streak %d\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.WinRate(), stats.LongestWinStrk)
}

func (s *session) printGames() {
	if s.store == nil {
		return
	}
	games, err := s.store.RecentGames(5)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	for _, g := range games {
		fmt.Fprintf(s.out, "%s  %-7s %s (%s) depth %d, %d plies\n",
			g.PlayedAt.Format("2006-01-02 15:04"), g.Result, g.PlayerColor, g.Termination, g.Depth, len(g.Moves))
	}
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `moves are SAN (Nf3, exd5, O-O) or UCI (g1f3)
  u, undo          take back your last move
  board, fen       show the position
  moves            list the moves played
  eval             show the static evaluation
  thoughts         toggle the engine's top moves
  knight <a> <b>   shortest knight route between two squares
  attacks <sq>     squares attacked by the piece on sq
  stats, games     your record and recent games
  quit
`)
}

var pieceChars = [...]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}

func (s *session) printBoard() {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(pieceChar(s.pos.PieceAt(rank*8 + file)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprint(s.out, sb.String())
}

func pieceChar(p gm.Piece) byte {
	if p == gm.NoPiece {
		return '.'
	}
	c := pieceChars[p.Type()]
	if p.Color() == gm.Black {
		c += 'a' - 'A'
	}
	return c
}

func colorName(c gm.Color) string {
	if c == gm.Black {
		return "Black"
	}
	return "White"
}

func playerColor(c gm.Color) storage.PlayerColor {
	if c == gm.Black {
		return storage.ColorBlack
	}
	return storage.ColorWhite
}
