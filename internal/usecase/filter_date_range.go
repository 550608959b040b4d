package usecase

import (
	"errors"
	"time"

	"github.com/pknoche/pr-file-search/internal/domain"
)

// FilterDecision is the outcome of applying the date filter to one pull
// request of the stream.
type FilterDecision int

const (
	// DecisionKeep dispatches the pull request for a file check.
	DecisionKeep FilterDecision = iota
	// DecisionSkip drops the pull request but continues scanning.
	DecisionSkip
	// DecisionStop ends the entire enumeration: the stream is sorted by
	// creation date descending, so everything after this point is older
	// than the window.
	DecisionStop
)

// ErrUnsortedStream reports a pull request that is newer than its
// predecessor. The stop-early optimization is only correct against a
// descending stream, so a violation aborts the run instead of silently
// returning incomplete results.
var ErrUnsortedStream = errors.New("pull request stream is not sorted by creation date descending")

// DateRangeFilterUseCase decides, per pull request of a descending-by-
// creation-date stream, whether to keep, skip, or stop. One instance
// filters exactly one stream; it carries the previous timestamp to verify
// the sort-order invariant at runtime.
type DateRangeFilterUseCase struct {
	Criteria *domain.SearchCriteria

	prev    time.Time
	started bool
}

// Decide applies the filter to the next pull request of the stream.
func (uc *DateRangeFilterUseCase) Decide(pr domain.PullRequest) (FilterDecision, error) {
	if !uc.Criteria.DateFiltering {
		return DecisionKeep, nil
	}
	if uc.started && pr.CreatedAt.After(uc.prev) {
		return DecisionStop, ErrUnsortedStream
	}
	uc.prev = pr.CreatedAt
	uc.started = true
	if pr.CreatedAt.After(uc.Criteria.EndDate) {
		return DecisionSkip, nil
	}
	if pr.CreatedAt.Before(uc.Criteria.StartDate) {
		return DecisionStop, nil
	}
	return DecisionKeep, nil
}
