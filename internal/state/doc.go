// Package state holds the most recent CMS content for the UI.
//
// The poller writes with Update and the UI reads with Snapshot on its own
// tick. Update keeps the last good records when a refresh fails and records
// the error instead, so the UI can keep rendering content while it shows the
// CMS as unreachable. Snapshot deep-copies the content records.
//
// The zero Store is ready to use.
package state
