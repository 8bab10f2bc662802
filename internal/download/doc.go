package download

// Package download fetches the combined audio and chapter metadata for one
// URL through the yt-dlp binary, driven by the go-ytdlp wrapper.
