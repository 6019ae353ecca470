// Package pipeline orchestrates the per-directory merge flow: walk the
// target tree, detect part groups in each candidate directory, order each
// group, drive the concatenator, and report aggregate stats. Everything is
// strictly sequential; one ffmpeg process runs at a time.
package pipeline
