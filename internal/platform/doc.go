package platform

// Package platform provides OS-facing helpers: input classification,
// external dependency resolution, filesystem operations, and media probing.
