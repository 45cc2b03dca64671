// Package logtail reads the tail of the showcase log file for the diagnostics
// view.
//
// Read keeps a ring buffer of the last maxLines lines so memory stays bounded
// by the window rather than the file size. Parse turns zap's JSON lines into
// Entry values; anything that is not JSON is passed through as a message so
// hand-edited or truncated files still display.
//
// A missing log file is not an error: Read returns nil, nil.
package logtail
