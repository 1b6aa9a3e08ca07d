package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkNewBest         BookmarkType = "new_best"
	BookmarkLengthMilestone BookmarkType = "length_milestone"
)

// Bookmark marks a notable moment of a run.
type Bookmark struct {
	RunID       string       `csv:"run_id"`
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Score       int          `csv:"-"`
	Length      int          `csv:"length"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"run_id", b.RunID,
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags the first time a run beats the previous best score
// and every time the body length reaches a multiple of the milestone.
type BookmarkDetector struct {
	milestone int

	previousBest  int
	bestFlagged   bool
	lastMilestone int
}

// NewBookmarkDetector creates a detector. A milestone below 1 disables
// length milestones.
func NewBookmarkDetector(milestone int) *BookmarkDetector {
	return &BookmarkDetector{milestone: milestone}
}

// BeginRun resets per-run state. previousBest is the best score of earlier runs.
func (bd *BookmarkDetector) BeginRun(previousBest int) {
	bd.previousBest = previousBest
	bd.bestFlagged = false
	bd.lastMilestone = 0
}

// Check returns the bookmarks triggered by the latest food consumption.
func (bd *BookmarkDetector) Check(runID string, tick int64, score, length int) []Bookmark {
	var bookmarks []Bookmark

	if !bd.bestFlagged && bd.previousBest > 0 && score > bd.previousBest {
		bd.bestFlagged = true
		bookmarks = append(bookmarks, Bookmark{
			RunID:       runID,
			Type:        BookmarkNewBest,
			Tick:        tick,
			Score:       score,
			Length:      length,
			Description: "beat the best finished run",
		})
	}

	if bd.milestone > 0 {
		reached := length / bd.milestone * bd.milestone
		if reached > bd.lastMilestone && reached > 0 {
			bd.lastMilestone = reached
			bookmarks = append(bookmarks, Bookmark{
				RunID:       runID,
				Type:        BookmarkLengthMilestone,
				Tick:        tick,
				Score:       score,
				Length:      length,
				Description: fmt.Sprintf("body reached %d cells", reached),
			})
		}
	}

	return bookmarks
}
