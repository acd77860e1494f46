package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	prefixGame     = "game/"
)

// PlayerColor is the side the human plays.
type PlayerColor int

const (
	ColorWhite PlayerColor = iota
	ColorBlack
	ColorRandom
)

func (c PlayerColor) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	}
	return "random"
}

// ParsePlayerColor accepts white, black or random.
func ParsePlayerColor(s string) (PlayerColor, error) {
	switch s {
	case "white", "w":
		return ColorWhite, nil
	case "black", "b":
		return ColorBlack, nil
	case "random", "r":
		return ColorRandom, nil
	}
	return ColorWhite, fmt.Errorf("unknown colour %q", s)
}

// Preferences stores player settings.
type Preferences struct {
	Username     string      `json:"username"`
	Depth        int         `json:"depth"`
	PlayerColor  PlayerColor `json:"player_color"`
	ShowThoughts bool        `json:"show_thoughts"`
	LastPlayed   time.Time   `json:"last_played"`
}

// DefaultPreferences returns the settings used before anything is saved.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:     "Player",
		Depth:        3,
		PlayerColor:  ColorWhite,
		ShowThoughts: true,
	}
}

// GameStats accumulates results of finished games.
type GameStats struct {
	GamesPlayed    int           `json:"games_played"`
	Wins           int           `json:"wins"`
	Losses         int           `json:"losses"`
	Draws          int           `json:"draws"`
	WinsByDepth    map[int]int   `json:"wins_by_depth"`
	TotalPlayTime  time.Duration `json:"total_play_time"`
	LongestWinStrk int           `json:"longest_win_streak"`
	CurrentStreak  int           `json:"current_streak"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{WinsByDepth: make(map[int]int)}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameResult describes a finished game from the human's point of view.
type GameResult struct {
	Won      bool
	Draw     bool
	Depth    int
	Duration time.Duration
}

// GameRecord is a finished game kept for later review.
type GameRecord struct {
	ID          string      `json:"id"`
	StartFEN    string      `json:"start_fen"`
	Moves       []string    `json:"moves"`
	Result      string      `json:"result"`
	Termination string      `json:"termination"`
	PlayerColor PlayerColor `json:"player_color"`
	Depth       int         `json:"depth"`
	PlayedAt    time.Time   `json:"played_at"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens the database in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open storage %q: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v. A missing key leaves v untouched.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// SavePreferences saves player preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads player preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	err := s.get(keyStats, stats)
	if stats.WinsByDepth == nil {
		stats.WinsByDepth = make(map[int]int)
	}
	return stats, err
}

// RecordGame updates statistics with a finished game.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		stats.WinsByDepth[result.Depth]++
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// SaveGame stores a finished game. Records sort by the time they were played.
func (s *Storage) SaveGame(rec *GameRecord) error {
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("%020d", rec.PlayedAt.UnixNano())
	}
	return s.put(prefixGame+rec.ID, rec)
}

// RecentGames returns up to limit games, newest first. limit <= 0 returns all.
func (s *Storage) RecentGames(limit int) ([]GameRecord, error) {
	var games []GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(prefixGame)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts from the last key sharing the prefix.
		seek := append([]byte(prefixGame), 0xff)
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix); it.Next() {
			var rec GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			games = append(games, rec)
			if limit > 0 && len(games) >= limit {
				break
			}
		}
		return nil
	})
	return games, err
}
