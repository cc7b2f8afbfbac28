// Package render prints struct layouts as human-readable trees.
// It consumes read-only layout data and contributes nothing to the
// binary format.
package render
