package batch

// Package batch sequences download and splitting across source items,
// isolating per-item failures and reporting an end-of-run summary.
