// Package cache implements the refreshable auction index cache.
//
// The cache:
//   - Builds its first index synchronously on construction
//   - Serves lock-free snapshots that never block on a refresh in flight
//   - Replaces the whole index atomically when a refresh succeeds
//   - Keeps the previous index untouched when a refresh fails
//   - Refreshes on a fixed cadence measured from the start of each attempt
package cache
