package model

// OutputTrack is one post-split audio file corresponding to one chapter.
// Terminal: once written it is never mutated.
type OutputTrack struct {
	Path    string
	Chapter Chapter
}
