package model

// Package model defines domain data structures used across the app: source
// items, chapter metadata, output tracks, and status enums. Structures are
// designed for explicit state transitions and direct use in console output.
