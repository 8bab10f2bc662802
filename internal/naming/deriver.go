// Package naming derives sanitized track filenames from chapter and video
// metadata. Derivation is an ordered pipeline of optional components:
// zero-padded number, literal prefix, video-title prefix, chapter title.
package naming

import (
	"fmt"
	"strings"
)

const (
	// Separator joins filename components
	Separator = "_"

	// TitlePrefixMaxLen caps the derived video-title prefix
	TitlePrefixMaxLen = 40

	// FallbackTitle names chapters that have no title of their own
	FallbackTitle = "track"
)

// Delimiters that end the video-title prefix; the earliest occurrence wins
var titleDelimiters = []string{" - ", "(", "["}

// Options controls which filename components are produced
type Options struct {
	Prefix      string // literal prefix component, sanitized; skipped when empty
	PrefixName  bool   // derive a prefix from the video title
	Numbers     bool   // zero-padded 1-based chapter number
	AudioFormat string // filename extension
}

// Derive computes the output filename for one chapter. index is the 0-based
// chapter position, total the chapter count of the video. The result contains
// no path separators, NUL bytes, or control characters. Colliding names are
// not de-duplicated; the later write wins.
func Derive(index int, chapterTitle, videoTitle string, total int, opts Options) string {
	var parts []string

	if opts.Numbers {
		parts = append(parts, fmt.Sprintf("%0*d", PadWidth(total), index+1))
	}

	if prefix := Sanitize(opts.Prefix); prefix != "" {
		parts = append(parts, prefix)
	}

	if opts.PrefixName {
		if prefix := TitlePrefix(videoTitle); prefix != "" {
			parts = append(parts, prefix)
		}
	}

	title := Sanitize(chapterTitle)
	if title == "" {
		title = fmt.Sprintf("%s-%d", FallbackTitle, index+1)
	}
	parts = append(parts, title)

	return strings.Join(parts, Separator) + "." + opts.AudioFormat
}

// PadWidth returns the zero-padding width for chapter numbers: the number of
// decimal digits in the chapter total.
func PadWidth(total int) int {
	width := 1
	for total >= 10 {
		total /= 10
		width++
	}
	return width
}

// Sanitize strips characters unsafe for filenames. Letters, digits, '_' and
// '-' survive; every other rune becomes a space, and whitespace runs collapse
// to a single separator.
func Sanitize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '-' || r == ' ':
			return r
		}
		return ' '
	}, s)

	return strings.Join(strings.Fields(mapped), Separator)
}

// TitlePrefix derives a filename prefix from the video title: the part before
// the earliest delimiter, lowercased, sanitized, and truncated. Returns empty
// when nothing usable remains; the caller skips the component then.
func TitlePrefix(videoTitle string) string {
	cut := len(videoTitle)
	for _, delim := range titleDelimiters {
		if pos := strings.Index(videoTitle, delim); pos >= 0 && pos < cut {
			cut = pos
		}
	}

	prefix := Sanitize(strings.ToLower(videoTitle[:cut]))
	if len(prefix) > TitlePrefixMaxLen {
		prefix = prefix[:TitlePrefixMaxLen]
	}
	return strings.TrimRight(prefix, Separator+"-")
}
