package model

import (
	"strings"
	"time"
)

// SourceItem represents one input unit: a single URL taken either from the
// command line or from one line of a batch file.
type SourceItem struct {
	ID         string
	URL        string
	Status     ItemStatus
	LastError  string    // last error message if any
	Title      string    // video title, known after metadata fetch
	Chapters   int       // number of chapters discovered
	Tracks     int       // number of tracks written to disk
	StartedAt  time.Time // when processing started
	FinishedAt time.Time // when processing finished
}

// GetDisplayTitle returns the video title when known, otherwise the URL
func (si *SourceItem) GetDisplayTitle() string {
	if si.Title != "" && !strings.HasPrefix(si.Title, "http") {
		return si.Title
	}
	return si.URL
}
