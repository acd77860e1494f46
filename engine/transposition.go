package engine

// TTFlag tells how a stored score bounds the true value.
type TTFlag int8

const (
	ExactFlag TTFlag = iota
	LowerBoundFlag
	UpperBoundFlag
)

func (f TTFlag) String() string {
	switch f {
	case ExactFlag:
		return "exact"
	case LowerBoundFlag:
		return "lowerbound"
	case UpperBoundFlag:
		return "upperbound"
	}
	return "unknown"
}

type TTEntry struct {
	Hash  uint64
	Score int32
	Depth int8
	Flag  TTFlag
}

// TransTable caches search results for the duration of one search call.
// A disabled table misses on every probe and discards stores.
type TransTable struct {
	enabled bool
	entries map[uint64]TTEntry

	probes uint64
	hits   uint64
	cuts   uint64
	stores uint64
}

// NewTransTable returns an empty table.
func NewTransTable(enabled bool) *TransTable {
	tt := &TransTable{enabled: enabled}
	if enabled {
		tt.entries = make(map[uint64]TTEntry, 1<<14)
	}
	return tt
}

func (tt *TransTable) Enabled() bool { return tt.enabled }

func (tt *TransTable) Len() int { return len(tt.entries) }

// getEntry returns the entry for hash when it is deep enough for depth.
func (tt *TransTable) getEntry(hash uint64, depth int8) (TTEntry, bool) {
	if !tt.enabled {
		return TTEntry{}, false
	}
	tt.probes++
	entry, ok := tt.entries[hash]
	if !ok || entry.Depth < depth {
		return TTEntry{}, false
	}
	tt.hits++
	return entry, true
}

// Probe looks hash up and applies the bound semantics against the window.
// ok is true only when the caller may return score without searching.
func (tt *TransTable) Probe(hash uint64, depth int8, alpha, beta int32, ply int) (score int32, ok bool) {
	entry, found := tt.getEntry(hash, depth)
	if !found {
		return 0, false
	}
	norm := scoreFromTT(entry.Score, ply)
	switch entry.Flag {
	case ExactFlag:
		score, ok = norm, true
	case LowerBoundFlag:
		if norm >= beta {
			score, ok = beta, true
		}
	case UpperBoundFlag:
		if norm <= alpha {
			score, ok = alpha, true
		}
	}
	if ok {
		tt.cuts++
	}
	return score, ok
}

// Store writes an entry, replacing whatever was kept for hash.
func (tt *TransTable) Store(hash uint64, score int32, depth int8, flag TTFlag, ply int) {
	if !tt.enabled {
		return
	}
	tt.stores++
	tt.entries[hash] = TTEntry{
		Hash:  hash,
		Score: scoreToTT(score, ply),
		Depth: depth,
		Flag:  flag,
	}
}

// Mate scores are kept relative to the node that stored them.
func scoreToTT(score int32, ply int) int32 {
	if score > MateThreshold {
		return score + int32(ply)
	} else if score < -MateThreshold {
		return score - int32(ply)
	}
	return score
}

func scoreFromTT(score int32, ply int) int32 {
	if score > MateThreshold {
		return score - int32(ply)
	} else if score < -MateThreshold {
		return score + int32(ply)
	}
	return score
}

// TTStats summarises table usage.
type TTStats struct {
	Probes  uint64
	Hits    uint64
	Cutoffs uint64
	Stores  uint64
	Entries int
}

func (tt *TransTable) Stats() TTStats {
	return TTStats{Probes: tt.probes, Hits: tt.hits, Cutoffs: tt.cuts, Stores: tt.stores, Entries: len(tt.entries)}
}

// HitRate is the share of probes that found a deep enough entry.
func (s TTStats) HitRate() float64 {
	if s.Probes == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Probes)
}
