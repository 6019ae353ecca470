// Package concat performs lossless stream-copy concatenation of ordered MP3
// parts by driving ffmpeg's concat demuxer through a transient manifest
// file. Failures are reported as values carrying ffmpeg's stderr; the
// skip-if-destination-exists policy belongs to the caller, not this package.
package concat
