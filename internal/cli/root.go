// Package cli wires the cobra command surface to the batch orchestrator.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slycer/slycer/internal/batch"
	"github.com/slycer/slycer/internal/config"
	"github.com/slycer/slycer/internal/download"
	"github.com/slycer/slycer/internal/model"
	"github.com/slycer/slycer/internal/platform"
	"github.com/slycer/slycer/internal/split"
	"github.com/slycer/slycer/internal/ui"
)

// Execute runs the root command and exits non-zero on failure
func Execute(version string) {
	cmd := newRootCmd(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(version string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "slycer INPUT",
		Short:   "Download and split video audio by chapters",
		Long:    "slycer downloads the audio of a video URL with yt-dlp and slices it\ninto one file per chapter with ffmpeg. INPUT is a single URL or a path\nto a newline-delimited file of URLs.",
		Version: version,
		Args:    cobra.ExactArgs(1),

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", config.DefaultOutput, "temporary combined-audio path")
	flags.StringP("audio-format", "f", config.DefaultAudioFormat, "output track audio format")
	flags.StringP("dest", "d", "", "destination directory for split tracks")
	flags.BoolP("keep", "k", false, "keep the combined audio file after splitting")
	flags.BoolP("yes", "y", false, "auto-approve installing missing dependencies")
	flags.String("prefix", "", "literal prefix for track filenames")
	flags.Bool("prefix-name", false, "use the processed video title as filename prefix")
	flags.Bool("numbers", false, "prepend zero-padded track numbers to filenames")
	flags.StringVar(&configPath, "config", "", "path to config file (default: search standard locations)")

	return cmd
}

// loadSettings layers defaults, the optional config file, and explicitly set
// flags, in that order of increasing priority.
func loadSettings(cmd *cobra.Command, configPath string) (*config.Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("audio-format") {
		cfg.AudioFormat, _ = flags.GetString("audio-format")
	}
	if flags.Changed("dest") {
		cfg.Dest, _ = flags.GetString("dest")
	}
	if flags.Changed("keep") {
		cfg.Keep, _ = flags.GetBool("keep")
	}
	if flags.Changed("yes") {
		cfg.AutoInstall, _ = flags.GetBool("yes")
	}
	if flags.Changed("prefix") {
		cfg.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("prefix-name") {
		cfg.PrefixName, _ = flags.GetBool("prefix-name")
	}
	if flags.Changed("numbers") {
		cfg.Numbers, _ = flags.GetBool("numbers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes the whole batch for the given input argument
func run(ctx context.Context, cfg *config.Settings, input string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := platform.EnsureDependencies(ctx, cfg.AutoInstall, os.Stdin); err != nil {
		return err
	}

	urls, err := platform.ClassifySource(input)
	if err != nil {
		return err
	}

	printer := ui.NewConsolePrinter()
	orch := batch.New(cfg, download.NewService(cfg.Output, cfg.AudioFormat), split.NewService(), printer)
	orch.SetUpdateCallback(statusReporter(printer))

	summary, err := orch.Run(ctx, urls)
	if err != nil {
		return err
	}

	if summary.Total > 0 && summary.Succeeded == 0 {
		return fmt.Errorf("no item could be processed (%d failed)", summary.Failed)
	}
	return nil
}

// statusReporter renders item status transitions as console progress lines
func statusReporter(printer *ui.Printer) func(*model.SourceItem) {
	return func(item *model.SourceItem) {
		switch item.Status {
		case model.ItemStatusDownloading:
			printer.Infof("[%s] Downloading %s", item.ID, item.URL)
		case model.ItemStatusSplitting:
			printer.Infof("[%s] Splitting %q into %d chapter(s)", item.ID, item.GetDisplayTitle(), item.Chapters)
		case model.ItemStatusDone:
			printer.Infof("[%s] Done: %d track(s) written", item.ID, item.Tracks)
		case model.ItemStatusFailed:
			printer.Warnf("[%s] %s: %s", item.ID, item.URL, item.LastError)
		}
	}
}
