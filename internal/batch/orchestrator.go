package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/slycer/slycer/internal/config"
	"github.com/slycer/slycer/internal/download"
	"github.com/slycer/slycer/internal/model"
	"github.com/slycer/slycer/internal/naming"
	"github.com/slycer/slycer/internal/platform"
	"github.com/slycer/slycer/internal/split"
	"github.com/slycer/slycer/internal/ui"
)

// Item ID prefix
const itemIDPrefix = "item-"

// Summary reports the end-of-run totals
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Tracks    int
	Written   []model.OutputTrack
}

// Orchestrator processes source items strictly sequentially: download,
// extract chapters, split all tracks, clean up. A failed item never halts
// the batch.
type Orchestrator struct {
	cfg       *config.Settings
	extractor download.Extractor
	splitter  split.Splitter
	printer   *ui.Printer
	remove    func(string) error      // combined-file cleanup
	onUpdate  func(*model.SourceItem) // callback for status transitions
}

// New creates a new orchestrator
func New(cfg *config.Settings, extractor download.Extractor, splitter split.Splitter, printer *ui.Printer) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		extractor: extractor,
		splitter:  splitter,
		printer:   printer,
		remove:    defaultRemove,
	}
}

// SetUpdateCallback sets the callback invoked on every item status change
func (o *Orchestrator) SetUpdateCallback(callback func(*model.SourceItem)) {
	o.onUpdate = callback
}

// Run processes every URL in order and returns the summary. The returned
// error is non-nil only for fatal conditions: a destination directory that
// cannot be created. Context cancellation fails the in-flight item and ends
// the run early; the summary still covers everything processed.
func (o *Orchestrator) Run(ctx context.Context, urls []string) (Summary, error) {
	summary := Summary{Total: len(urls)}

	if err := platform.CreateDirectoryIfNotExists(o.cfg.Dest); err != nil {
		return summary, err
	}

	for _, url := range urls {
		item := o.newItem(url)
		o.processItem(ctx, item, &summary)

		if item.Status == model.ItemStatusDone {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.Tracks += item.Tracks

		if ctx.Err() != nil {
			o.printer.Warnf("Interrupted, stopping after %s", item.URL)
			break
		}
	}

	o.printer.Successf("Finished: %d item(s), %d succeeded, %d failed, %d track(s) written",
		summary.Total, summary.Succeeded, summary.Failed, summary.Tracks)
	return summary, nil
}

// processItem walks one item through Downloading and Splitting
func (o *Orchestrator) processItem(ctx context.Context, item *model.SourceItem, summary *Summary) {
	o.setStatus(item, model.ItemStatusDownloading)

	meta, err := o.extractor.Fetch(ctx, item.URL)
	if err != nil {
		o.failItem(item, fmt.Errorf("download failed: %w", err))
		return
	}

	item.Title = meta.Title
	item.Chapters = len(meta.Chapters)
	o.setStatus(item, model.ItemStatusSplitting)

	opts := naming.Options{
		Prefix:      o.cfg.Prefix,
		PrefixName:  o.cfg.PrefixName,
		Numbers:     o.cfg.Numbers,
		AudioFormat: o.cfg.AudioFormat,
	}

	var splitFailures, skipped int
	for _, chapter := range meta.Chapters {
		if ctx.Err() != nil {
			break
		}
		// The sub-second skip guards multi-chapter slicing against empty
		// stream-copy output. A video's only chapter (including the
		// synthetic whole-file one) is always sliced, so every successful
		// download yields at least one track.
		if len(meta.Chapters) > 1 && split.TooShort(chapter) {
			skipped++
			o.printer.Noticef("Skipping %q (shorter than %.0fs)", chapterName(chapter), split.MinChapterSeconds)
			continue
		}

		name := naming.Derive(chapter.Index, chapter.Title, meta.Title, len(meta.Chapters), opts)
		outputPath := name
		if o.cfg.Dest != "" {
			outputPath = filepath.Join(o.cfg.Dest, name)
		}

		if err := o.splitter.Split(ctx, o.cfg.Output, chapter, outputPath); err != nil {
			splitFailures++
			o.printer.Warnf("Chapter %q of %s failed: %v", chapterName(chapter), item.URL, err)
			continue
		}

		item.Tracks++
		summary.Written = append(summary.Written, model.OutputTrack{Path: outputPath, Chapter: chapter})
	}

	o.cleanupCombined()

	if ctx.Err() != nil {
		o.failItem(item, fmt.Errorf("interrupted: %w", ctx.Err()))
		return
	}
	if item.Tracks == 0 {
		o.failItem(item, fmt.Errorf("no tracks written (%d chapter(s) failed, %d skipped)", splitFailures, skipped))
		return
	}

	item.FinishedAt = time.Now()
	o.setStatus(item, model.ItemStatusDone)
}

// cleanupCombined deletes the combined audio file unless --keep was given.
// A failed delete is a warning, never fatal.
func (o *Orchestrator) cleanupCombined() {
	if o.cfg.Keep {
		return
	}
	if err := o.remove(o.cfg.Output); err != nil {
		o.printer.Warnf("Failed to remove combined audio %s: %v", o.cfg.Output, err)
	}
}

// failItem marks the item failed; the status observer reports it
func (o *Orchestrator) failItem(item *model.SourceItem, err error) {
	item.LastError = err.Error()
	item.FinishedAt = time.Now()
	o.setStatus(item, model.ItemStatusFailed)
}

// setStatus transitions the item and notifies the observer
func (o *Orchestrator) setStatus(item *model.SourceItem, status model.ItemStatus) {
	item.Status = status
	if o.onUpdate != nil {
		o.onUpdate(item)
	}
}

// newItem creates a pending item for one URL
func (o *Orchestrator) newItem(url string) *model.SourceItem {
	return &model.SourceItem{
		ID:        generateItemID(),
		URL:       url,
		Status:    model.ItemStatusPending,
		StartedAt: time.Now(),
	}
}

// chapterName returns a printable chapter title
func chapterName(chapter model.Chapter) string {
	if chapter.Title != "" {
		return chapter.Title
	}
	return fmt.Sprintf("%s-%d", naming.FallbackTitle, chapter.Index+1)
}

func defaultRemove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// generateItemID generates a unique item ID using UUID v7 for time ordering
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(itemIDPrefix+"%d", time.Now().UnixNano())
	}
	return itemIDPrefix + id.String()
}
