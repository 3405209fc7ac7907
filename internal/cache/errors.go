package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrRefreshFailed matches every refresh failure returned by RefreshOnce.
	ErrRefreshFailed = errors.New("refresh failed")

	// ErrAlreadyStarted is returned by Start on a cache that was started before.
	ErrAlreadyStarted = errors.New("refresher already started")
)

// RefreshError wraps the collector error that aborted a refresh.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRefreshFailed, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRefreshFailed.
func (e *RefreshError) Is(target error) bool {
	return target == ErrRefreshFailed
}
