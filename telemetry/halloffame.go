package telemetry

import (
	"log/slog"
	"sort"
)

// HallOfFame keeps the best runs of this process in memory.
// Entries are ordered by score, then by fewer ticks.
type HallOfFame struct {
	entries []RunStats
	maxSize int
}

// NewHallOfFame creates a hall holding at most maxSize runs.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 1 {
		maxSize = 1
	}
	return &HallOfFame{
		entries: make([]RunStats, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider adds the run if it ranks among the best. Returns true if it was added.
func (h *HallOfFame) Consider(r RunStats) bool {
	if len(h.entries) == h.maxSize && !better(r, h.entries[len(h.entries)-1]) {
		return false
	}

	h.entries = append(h.entries, r)
	sort.SliceStable(h.entries, func(i, j int) bool {
		return better(h.entries[i], h.entries[j])
	})
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[:h.maxSize]
	}
	return true
}

func better(a, b RunStats) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Ticks < b.Ticks
}

// Entries returns the ranked runs.
func (h *HallOfFame) Entries() []RunStats {
	return h.entries
}

// BestScore returns the top score, or 0 when empty.
func (h *HallOfFame) BestScore() int {
	if len(h.entries) == 0 {
		return 0
	}
	return h.entries[0].Score
}

// Log writes the ranked runs via slog.
func (h *HallOfFame) Log() {
	for i, r := range h.entries {
		slog.Info("hall of fame", "rank", i+1, "run", r)
	}
}
