package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates every finished run of a session.
type Summary struct {
	Runs       int
	TotalFood  int
	TotalTicks int
	BestScore  int
	MeanScore  float64
	P50Score   float64
	P90Score   float64
	MeanLength float64
	MaxLength  int
}

// Percentile returns the p-th empirical quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summarize computes a Summary over runs.
func Summarize(runs []RunStats) Summary {
	s := Summary{Runs: len(runs)}
	if len(runs) == 0 {
		return s
	}

	scores := make([]float64, len(runs))
	lengths := make([]float64, len(runs))
	for i, r := range runs {
		scores[i] = float64(r.Score)
		lengths[i] = float64(r.FinalLength)
		s.TotalFood += r.FoodEaten
		s.TotalTicks += r.Ticks
		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		if r.MaxLength > s.MaxLength {
			s.MaxLength = r.MaxLength
		}
	}

	s.MeanScore = stat.Mean(scores, nil)
	s.MeanLength = stat.Mean(lengths, nil)

	sort.Float64s(scores)
	s.P50Score = Percentile(scores, 0.5)
	s.P90Score = Percentile(scores, 0.9)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("runs", s.Runs),
		slog.Int("total_food", s.TotalFood),
		slog.Int("total_ticks", s.TotalTicks),
		slog.Int("best_score", s.BestScore),
		slog.Float64("mean_score", s.MeanScore),
		slog.Float64("p50_score", s.P50Score),
		slog.Float64("p90_score", s.P90Score),
		slog.Float64("mean_length", s.MeanLength),
		slog.Int("max_length", s.MaxLength),
	)
}

// LogStats logs the summary using slog.
func (s Summary) LogStats() {
	slog.Info("session summary", "summary", s)
}
