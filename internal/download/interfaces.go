package download

import (
	"context"

	"github.com/slycer/slycer/internal/model"
)

// Extractor defines the interface for the chapter extraction step: download
// the audio of one URL to the configured combined path and return the video
// title plus its ordered chapter list. Implementations guarantee at least one
// chapter for every successful fetch.
type Extractor interface {
	Fetch(ctx context.Context, url string) (*model.VideoMeta, error)
}
