package model

// ItemStatus represents the processing status of a source item
type ItemStatus string

const (
	// ItemStatusPending means the item is queued but not started
	ItemStatusPending ItemStatus = "Pending"

	// ItemStatusDownloading means the audio download is in progress
	ItemStatusDownloading ItemStatus = "Downloading"

	// ItemStatusSplitting means chapters are being sliced from the audio
	ItemStatusSplitting ItemStatus = "Splitting"

	// ItemStatusDone means the item finished successfully
	ItemStatusDone ItemStatus = "Done"

	// ItemStatusFailed means the item failed with an error
	ItemStatusFailed ItemStatus = "Failed"
)

// String returns the string representation of ItemStatus
func (is ItemStatus) String() string {
	return string(is)
}

// IsActive returns true if the item is in an active state
func (is ItemStatus) IsActive() bool {
	return is == ItemStatusDownloading || is == ItemStatusSplitting
}

// IsFinished returns true if the item is in a terminal state (done or failed)
func (is ItemStatus) IsFinished() bool {
	return is == ItemStatusDone || is == ItemStatusFailed
}
