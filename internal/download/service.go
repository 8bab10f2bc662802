package download

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lrstanley/go-ytdlp"

	"github.com/slycer/slycer/internal/model"
	"github.com/slycer/slycer/internal/platform"
)

// DurationProber returns the duration of a local media file in seconds.
// Used as a fallback when the source metadata carries no duration.
type DurationProber func(ctx context.Context, path string) (float64, error)

// Service downloads audio and chapter metadata via the yt-dlp binary
type Service struct {
	outputPath  string
	audioFormat string
	probe       DurationProber
}

// NewService creates a new download service writing combined audio to
// outputPath in the given format
func NewService(outputPath, audioFormat string) *Service {
	return &Service{
		outputPath:  outputPath,
		audioFormat: audioFormat,
		probe:       platform.ProbeDuration,
	}
}

// SetDurationProber overrides the fallback duration probe
func (s *Service) SetDurationProber(probe DurationProber) {
	s.probe = probe
}

// Fetch downloads the audio of url into the configured combined path and
// returns the video metadata. A video without chapter markers yields one
// synthetic chapter spanning the full duration, titled with the video title,
// so every successful fetch produces at least one track.
func (s *Service) Fetch(ctx context.Context, url string) (*model.VideoMeta, error) {
	dl := ytdlp.New().
		ExtractAudio().
		AudioFormat(s.audioFormat).
		NoPlaylist().
		ForceOverwrites().
		Output(s.outputPath)

	if _, err := dl.Run(ctx, url); err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	info := ytdlp.New().
		DumpSingleJSON().
		SkipDownload().
		NoPlaylist()

	result, err := info.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("metadata fetch failed: %w", err)
	}

	meta, err := decodeVideoMeta([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}

	if len(meta.Chapters) == 0 {
		if err := s.applyWholeFileFallback(ctx, meta); err != nil {
			return nil, err
		}
	}

	return meta, nil
}

// videoInfo mirrors the fields of interest in yt-dlp's -J output
type videoInfo struct {
	Title    string        `json:"title"`
	Duration float64       `json:"duration"`
	Chapters []chapterInfo `json:"chapters"`
}

type chapterInfo struct {
	Title     string  `json:"title"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// decodeVideoMeta parses yt-dlp JSON metadata. Chapters whose time range is
// not strictly increasing are dropped.
func decodeVideoMeta(data []byte) (*model.VideoMeta, error) {
	var info videoInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("invalid metadata JSON: %w", err)
	}

	meta := &model.VideoMeta{
		Title:    info.Title,
		Duration: info.Duration,
	}

	for _, ch := range info.Chapters {
		if ch.StartTime >= ch.EndTime {
			log.Printf("Dropping chapter %q with invalid range [%v, %v)", ch.Title, ch.StartTime, ch.EndTime)
			continue
		}
		meta.Chapters = append(meta.Chapters, model.Chapter{
			Index: len(meta.Chapters),
			Title: ch.Title,
			Start: ch.StartTime,
			End:   ch.EndTime,
		})
	}

	return meta, nil
}

// applyWholeFileFallback turns a chapterless video into a single chapter
// covering the full duration
func (s *Service) applyWholeFileFallback(ctx context.Context, meta *model.VideoMeta) error {
	duration := meta.Duration
	if duration <= 0 {
		probed, err := s.probe(ctx, s.outputPath)
		if err != nil {
			return fmt.Errorf("no chapters and no duration available: %w", err)
		}
		duration = probed
		meta.Duration = probed
	}

	meta.Chapters = []model.Chapter{{
		Index: 0,
		Title: meta.Title,
		Start: 0,
		End:   duration,
	}}
	return nil
}
