package split

import (
	"context"

	"github.com/slycer/slycer/internal/model"
)

// Splitter defines the interface for extracting one chapter's time range from
// the combined audio file into outputPath. One call per chapter; a failed
// call never affects other chapters.
type Splitter interface {
	Split(ctx context.Context, combinedPath string, chapter model.Chapter, outputPath string) error
}
