package repository

import (
	"errors"
	"fmt"
)

// ErrStopIteration is returned by an enumeration callback to stop paging
// early without reporting an error. Callers of ForEachPullRequest and
// ForEachChangedFile use it to abandon the remainder of a sequence.
var ErrStopIteration = errors.New("stop iteration")

// FetchError reports a failed page request. StatusCode is zero when the
// request never produced an HTTP response (transport-level failure).
type FetchError struct {
	Resource   string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: %d %s", e.Resource, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
