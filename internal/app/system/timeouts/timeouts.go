// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout around backend calls in
// HTTP handlers. Centralizing them keeps the values consistent and
// easy to adjust.
//
// Guidelines:
//   - Ping: health checks and reachability probes
//   - Short: single-record fetches, form renders
//   - Medium: list fetches, creates, updates, deletes
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for reachability probes.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-record backend calls.
func Short() time.Duration { return short }

// Medium returns the timeout for list fetches and mutations.
func Medium() time.Duration { return medium }
