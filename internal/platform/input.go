package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Comment marker for batch files
const commentPrefix = "#"

// ErrInvalidInput marks fatal input problems: unreadable batch files or
// batch files that contain no URLs.
var ErrInvalidInput = errors.New("invalid input")

// ClassifySource decides between single-URL and batch-file mode. When the
// input argument resolves to an existing regular file it is read as a
// newline-delimited URL list: blank lines and comment lines are dropped,
// everything else is kept in file order. URL validity is not checked here;
// bad lines fail later at download time. A non-file argument is returned as
// the sole URL.
func ClassifySource(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil || info.IsDir() {
		return []string{input}, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read batch file %s: %v", ErrInvalidInput, input, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		urls = append(urls, line)
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: batch file %s contains no URLs", ErrInvalidInput, input)
	}

	return urls, nil
}
