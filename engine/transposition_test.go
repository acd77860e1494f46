package engine

import "testing"

func TestTransTableProbeRespectsDepth(t *testing.T) {
	tt := NewTransTable(true)
	tt.Store(42, 120, 3, ExactFlag, 0)

	if _, ok := tt.Probe(42, 4, -MaxScore, MaxScore, 0); ok {
		t.Fatalf("entry of depth 3 must not satisfy a depth 4 probe")
	}
	for _, depth := range []int8{0, 1, 3} {
		score, ok := tt.Probe(42, depth, -MaxScore, MaxScore, 0)
		if !ok || score != 120 {
			t.Fatalf("depth %d: expected exact hit 120, got %d (%v)", depth, score, ok)
		}
	}
	if _, ok := tt.Probe(43, 0, -MaxScore, MaxScore, 0); ok {
		t.Fatalf("unexpected hit for unknown hash")
	}
}

func TestTransTableBoundFlags(t *testing.T) {
	cases := []struct {
		name        string
		flag        TTFlag
		stored      int32
		alpha, beta int32
		wantOK      bool
		wantScore   int32
	}{
		{"lower bound above beta", LowerBoundFlag, 300, -100, 200, true, 200},
		{"lower bound inside window", LowerBoundFlag, 100, -100, 200, false, 0},
		{"upper bound below alpha", UpperBoundFlag, -300, -100, 200, true, -100},
		{"upper bound inside window", UpperBoundFlag, 0, -100, 200, false, 0},
		{"exact outside window", ExactFlag, 500, -100, 200, true, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tt := NewTransTable(true)
			tt.Store(7, tc.stored, 2, tc.flag, 0)
			score, ok := tt.Probe(7, 2, tc.alpha, tc.beta, 0)
			if ok != tc.wantOK || (ok && score != tc.wantScore) {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tc.wantScore, tc.wantOK, score, ok)
			}
		})
	}
}

func TestTransTableOverwrites(t *testing.T) {
	tt := NewTransTable(true)
	tt.Store(9, 50, 6, ExactFlag, 0)
	tt.Store(9, -20, 1, UpperBoundFlag, 0)
	if _, ok := tt.Probe(9, 6, -MaxScore, MaxScore, 0); ok {
		t.Fatalf("shallower store should have replaced the deep entry")
	}
	if tt.Len() != 1 {
		t.Fatalf("expected one entry, got %d", tt.Len())
	}
}

func TestTransTableMateScoresAreNodeRelative(t *testing.T) {
	tt := NewTransTable(true)
	// Mate found 5 plies from the root, stored at a node 2 plies deep.
	tt.Store(11, MateScore-5, 3, ExactFlag, 2)
	score, ok := tt.Probe(11, 3, -MaxScore, MaxScore, 4)
	if !ok || score != MateScore-7 {
		t.Fatalf("expected mate score re-based to %d, got %d", MateScore-7, score)
	}
	tt.Store(12, -MateScore+4, 3, ExactFlag, 1)
	score, _ = tt.Probe(12, 3, -MaxScore, MaxScore, 1)
	if score != -MateScore+4 {
		t.Fatalf("expected %d at the same ply, got %d", -MateScore+4, score)
	}
}

func TestDisabledTransTable(t *testing.T) {
	tt := NewTransTable(false)
	tt.Store(1, 10, 5, ExactFlag, 0)
	if _, ok := tt.Probe(1, 0, -MaxScore, MaxScore, 0); ok {
		t.Fatalf("disabled table must always miss")
	}
	if s := tt.Stats(); s.Stores != 0 || s.Probes != 0 || s.HitRate() != 0 {
		t.Fatalf("disabled table recorded activity: %+v", s)
	}
}

func TestTTStatsHitRate(t *testing.T) {
	tt := NewTransTable(true)
	tt.Store(1, 0, 1, ExactFlag, 0)
	tt.Probe(1, 1, -MaxScore, MaxScore, 0)
	tt.Probe(2, 1, -MaxScore, MaxScore, 0)
	if got := tt.Stats().HitRate(); got != 0.5 {
		t.Fatalf("expected hit rate 0.5, got %f", got)
	}
}
