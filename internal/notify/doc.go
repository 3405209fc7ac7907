// Package notify fans out cache refresh events to subscribers.
//
// Each subscriber owns a Queue, so a slow consumer never blocks the
// refresher or other subscribers. Queues grow on demand up to a limit, after
// which the oldest pending event is dropped.
package notify
