package model

// Chapter represents a named time-range within a video's audio, used as a
// split boundary. Start and End are offsets in seconds from the beginning of
// the combined audio file. Chapters arrive ordered and non-overlapping from
// the source metadata; Start < End holds for every chapter kept.
type Chapter struct {
	Index int     // ordinal position, starting at 0
	Title string  // free-text title, may be empty
	Start float64 // start offset in seconds
	End   float64 // end offset in seconds
}

// Duration returns the chapter length in seconds
func (c Chapter) Duration() float64 {
	return c.End - c.Start
}

// VideoMeta holds the per-URL result of the chapter extraction step: the
// video's display title and its ordered chapter list. A video without chapter
// markers is represented by a single chapter spanning the full duration.
type VideoMeta struct {
	Title    string
	Duration float64 // total duration in seconds
	Chapters []Chapter
}
