// Package collector implements the fan-out page collector.
//
// The collector:
//   - Fetches page 0 synchronously to discover the total page count
//   - Fetches every remaining page concurrently, bounded by a semaphore
//   - Joins all fetches and fails the whole collection if any page failed
//   - Returns pages ordered by page index regardless of completion order
package collector
