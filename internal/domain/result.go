package domain

import (
	"sync"
	"sync/atomic"
)

// CheckFailure records a pull request whose file list could not be fetched.
type CheckFailure struct {
	PullNumber int
	Err        error
}

// SearchResult accumulates the outcome of one search run. It is mutated
// concurrently by the file-check workers, so counters are atomic and the
// slices are mutex-guarded. Matched URLs are kept in completion order.
type SearchResult struct {
	mu          sync.Mutex
	matchedURLs []string
	failures    []CheckFailure

	pullRequestsSearched atomic.Int64
	filesSearched        atomic.Int64
}

// NewSearchResult creates an empty SearchResult.
func NewSearchResult() *SearchResult {
	return &SearchResult{}
}

// RecordMatch appends a matched pull request URL.
func (r *SearchResult) RecordMatch(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchedURLs = append(r.matchedURLs, url)
}

// RecordFailure marks a pull request as uncheckable.
func (r *SearchResult) RecordFailure(pullNumber int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, CheckFailure{PullNumber: pullNumber, Err: err})
}

// AddPullRequestSearched increments the pull-requests-searched counter.
func (r *SearchResult) AddPullRequestSearched() {
	r.pullRequestsSearched.Add(1)
}

// AddFileSearched increments the files-searched counter.
func (r *SearchResult) AddFileSearched() {
	r.filesSearched.Add(1)
}

// MatchedURLs returns a copy of the matched URLs in recording order.
func (r *SearchResult) MatchedURLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	urls := make([]string, len(r.matchedURLs))
	copy(urls, r.matchedURLs)
	return urls
}

// Failures returns a copy of the recorded check failures.
func (r *SearchResult) Failures() []CheckFailure {
	r.mu.Lock()
	defer r.mu.Unlock()
	failures := make([]CheckFailure, len(r.failures))
	copy(failures, r.failures)
	return failures
}

// PullRequestsSearched returns the number of pull requests dispatched for
// file checks.
func (r *SearchResult) PullRequestsSearched() int64 {
	return r.pullRequestsSearched.Load()
}

// FilesSearched returns the number of changed files examined.
func (r *SearchResult) FilesSearched() int64 {
	return r.filesSearched.Load()
}
