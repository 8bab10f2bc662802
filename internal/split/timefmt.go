package split

import "fmt"

// FormatSeconds converts seconds to HH:MM:SS.mmm for ffmpeg time parameters
// like -ss (seek start) and -t (duration).
//
// Example:
//
//	FormatSeconds(0)     // "00:00:00.000"
//	FormatSeconds(90)    // "00:01:30.000"
//	FormatSeconds(3661)  // "01:01:01.000"
//	FormatSeconds(30.53) // "00:00:30.530"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}
