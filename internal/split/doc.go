package split

// Package split slices the combined audio file into per-chapter tracks by
// invoking ffmpeg with stream copy.
