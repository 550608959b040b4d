package domain

import (
	"fmt"
	"time"
)

// PullRequestState selects which pull requests the list endpoint returns.
type PullRequestState string

const (
	StateOpen PullRequestState = "open"
	StateAll  PullRequestState = "all"
)

// ParseState converts user input into a PullRequestState.
func ParseState(s string) (PullRequestState, error) {
	switch PullRequestState(s) {
	case StateOpen:
		return StateOpen, nil
	case StateAll:
		return StateAll, nil
	default:
		return "", fmt.Errorf("invalid state %q: must be %q or %q", s, StateOpen, StateAll)
	}
}

// SearchCriteria describes one search run. It is constructed once from user
// input and validated before use.
type SearchCriteria struct {
	TargetFile    string
	State         PullRequestState
	DateFiltering bool
	StartDate     time.Time
	EndDate       time.Time
}

// Validate checks the criteria invariants.
func (c *SearchCriteria) Validate() error {
	if c.TargetFile == "" {
		return fmt.Errorf("target file cannot be empty")
	}
	if c.State != StateOpen && c.State != StateAll {
		return fmt.Errorf("invalid state %q", c.State)
	}
	if c.DateFiltering {
		if c.State != StateAll {
			return fmt.Errorf("date filtering is only supported when searching all pull requests")
		}
		if c.StartDate.IsZero() || c.EndDate.IsZero() {
			return fmt.Errorf("date filtering requires both a start and an end date")
		}
		if c.StartDate.After(c.EndDate) {
			return fmt.Errorf("start date %s cannot be after end date %s",
				c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"))
		}
	}
	return nil
}
