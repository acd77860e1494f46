package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// CutStatistics collects node counts and cutoffs of one search call.
type CutStatistics struct {
	Nodes            uint64
	QNodes           uint64
	TTCutoffs        uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
}

// SearchStats is reported with every search result.
type SearchStats struct {
	CutStatistics
	TT      TTStats
	Elapsed time.Duration
}

// NPS is nodes (quiescence included) per second.
func (s SearchStats) NPS() uint64 {
	ms := s.Elapsed.Milliseconds()
	if ms <= 0 {
		ms = 1
	}
	return (s.Nodes + s.QNodes) * 1000 / uint64(ms)
}

func (s SearchStats) logEvent(ev *zerolog.Event) *zerolog.Event {
	return ev.
		Uint64("nodes", s.Nodes).
		Uint64("qnodes", s.QNodes).
		Uint64("beta-cutoffs", s.BetaCutoffs).
		Uint64("tt-cutoffs", s.TTCutoffs).
		Uint64("qstandpat-cutoffs", s.QStandPatCutoffs).
		Uint64("qbeta-cutoffs", s.QBetaCutoffs).
		Uint64("tt-probes", s.TT.Probes).
		Float64("tt-hitrate", s.TT.HitRate()).
		Int("tt-entries", s.TT.Entries).
		Dur("elapsed", s.Elapsed)
}
