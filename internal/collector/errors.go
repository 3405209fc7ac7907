package collector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDiscoveryFailed is returned when page 0 cannot be fetched, leaving the
// total page count unknown.
var ErrDiscoveryFailed = errors.New("page discovery failed")

// FetchError reports the failure of a single page fetch.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// listFormat renders aggregated page failures on a single line.
func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d pages failed: %s", len(errs), strings.Join(msgs, "; "))
}
