package platform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/lrstanley/go-ytdlp"
)

// Required external binaries
const (
	YtdlpBinary  = "yt-dlp"
	FFmpegBinary = "ffmpeg"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Package managers per platform, checked in order
var (
	DarwinInstallers  = []string{"brew"}
	LinuxInstallers   = []string{"apt-get", "dnf", "yum", "pacman", "zypper", "apk"}
	WindowsInstallers = []string{"winget", "choco", "scoop"}
)

// Winget package ID for ffmpeg
const WingetFFmpegID = "Gyan.FFmpeg"

// ErrMissingDependency marks a required binary that is absent and was not
// installed. Fatal for the whole run.
var ErrMissingDependency = errors.New("missing dependency")

// EnsureDependencies verifies that yt-dlp and ffmpeg are available. Missing
// binaries are installed after confirmation: autoYes skips the prompt,
// otherwise a [y/N] answer is read from in. yt-dlp is fetched through the
// go-ytdlp installer; ffmpeg goes through the platform package manager.
func EnsureDependencies(ctx context.Context, autoYes bool, in io.Reader) error {
	missing := MissingDependencies()
	if len(missing) == 0 {
		return nil
	}

	list := strings.Join(missing, ", ")
	if !autoYes {
		ok, err := confirmInstall(list, in)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s; install manually or run with --yes", ErrMissingDependency, list)
		}
	}

	for _, bin := range missing {
		if err := installDependency(ctx, bin); err != nil {
			return fmt.Errorf("%w: failed to install %s: %v", ErrMissingDependency, bin, err)
		}
	}

	// go-ytdlp resolves its own downloaded binary at run time, so only
	// ffmpeg needs a re-check on PATH.
	for _, bin := range missing {
		if bin == YtdlpBinary {
			continue
		}
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%w: %s not found after installation", ErrMissingDependency, bin)
		}
	}

	return nil
}

// MissingDependencies returns the required binaries absent from PATH
func MissingDependencies() []string {
	var missing []string
	for _, bin := range []string{YtdlpBinary, FFmpegBinary} {
		if _, err := exec.LookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}
	return missing
}

// confirmInstall asks on stderr and reads the answer from in
func confirmInstall(list string, in io.Reader) (bool, error) {
	fmt.Fprintf(os.Stderr, "Missing binaries: %s. Install automatically? [y/N]: ", list)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// installDependency installs one binary
func installDependency(ctx context.Context, bin string) error {
	if bin == YtdlpBinary {
		_, err := ytdlp.Install(ctx, &ytdlp.InstallOptions{})
		return err
	}

	installer := chooseInstaller()
	if installer == "" {
		return fmt.Errorf("no supported package manager found for %s", runtime.GOOS)
	}

	argv := InstallCommand(installer, bin)
	log.Printf("Installing %s via %s", bin, installer)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", installer, err)
	}
	return nil
}

// chooseInstaller returns the first available package manager for this OS
func chooseInstaller() string {
	var candidates []string
	switch runtime.GOOS {
	case OSDarwin:
		candidates = DarwinInstallers
	case OSLinux:
		candidates = LinuxInstallers
	case OSWindows:
		candidates = WindowsInstallers
	}

	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// InstallCommand builds the full install command line for a package manager
func InstallCommand(installer, pkg string) []string {
	switch installer {
	case "brew":
		return []string{"brew", "install", "--formula", pkg}
	case "apt-get":
		return []string{"sudo", "-n", "apt-get", "install", "-y", "--no-install-recommends", pkg}
	case "dnf":
		return []string{"sudo", "-n", "dnf", "install", "-y", pkg}
	case "yum":
		return []string{"sudo", "-n", "yum", "install", "-y", pkg}
	case "pacman":
		return []string{"sudo", "-n", "pacman", "-S", "--noconfirm", "--needed", pkg}
	case "zypper":
		return []string{"sudo", "-n", "zypper", "install", "-y", "--no-recommends", pkg}
	case "apk":
		return []string{"sudo", "-n", "apk", "add", "--no-cache", pkg}
	case "winget":
		id := pkg
		if pkg == FFmpegBinary {
			id = WingetFFmpegID
		}
		return []string{"winget", "install", "--silent", "--accept-package-agreements", "--accept-source-agreements", "--exact", id}
	case "choco":
		return []string{"choco", "install", "-y", "--no-progress", pkg}
	case "scoop":
		return []string{"scoop", "install", pkg}
	}
	return nil
}
