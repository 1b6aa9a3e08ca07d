package game

import "log/slog"

// Notifier receives score and game over updates for display.
type Notifier interface {
	ScoreChanged(score int)
	GameOver(finalScore int)
}

// Notifiers fans every notification out to each element in order.
type Notifiers []Notifier

func (ns Notifiers) ScoreChanged(score int) {
	for _, n := range ns {
		n.ScoreChanged(score)
	}
}

func (ns Notifiers) GameOver(finalScore int) {
	for _, n := range ns {
		n.GameOver(finalScore)
	}
}

// LogNotifier writes notifications to slog.
type LogNotifier struct{}

func (LogNotifier) ScoreChanged(score int) {
	slog.Debug("score changed", "score", score)
}

func (LogNotifier) GameOver(finalScore int) {
	slog.Info("game over", "final_score", finalScore)
}
