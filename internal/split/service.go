package split

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strings"

	"github.com/slycer/slycer/internal/model"
)

// FFmpeg invocation constants
const (
	FFmpegCommand  = "ffmpeg"
	FFmpegLogLevel = "error"
	CopyCodec      = "copy"
)

// MinChapterSeconds is the shortest chapter worth slicing; stream copy on a
// sub-second range tends to produce empty files.
const MinChapterSeconds = 1.0

// Service slices chapters out of a combined audio file with ffmpeg
type Service struct{}

// NewService creates a new splitter service
func NewService() *Service {
	return &Service{}
}

// Split extracts the chapter's [start, end) range from combinedPath into
// outputPath using stream copy
func (s *Service) Split(ctx context.Context, combinedPath string, chapter model.Chapter, outputPath string) error {
	args := BuildSplitArgs(combinedPath, chapter, outputPath)
	cmd := exec.CommandContext(ctx, FFmpegCommand, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed to split %q: %w (output: %s)",
			chapter.Title, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// BuildSplitArgs builds the ffmpeg command arguments for one chapter
func BuildSplitArgs(combinedPath string, chapter model.Chapter, outputPath string) []string {
	start := math.Max(chapter.Start, 0)
	duration := math.Max(chapter.End-start, 0)

	return []string{
		"-hide_banner",
		"-loglevel", FFmpegLogLevel,
		"-y",
		"-ss", FormatSeconds(start),
		"-t", FormatSeconds(duration),
		"-i", combinedPath,
		"-c", CopyCodec,
		outputPath,
	}
}

// TooShort reports whether a chapter is below the minimum slice duration
func TooShort(chapter model.Chapter) bool {
	d := chapter.Duration()
	return !(d >= MinChapterSeconds) || math.IsInf(d, 0)
}
