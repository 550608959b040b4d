package repository

import (
	"context"

	"github.com/pknoche/pr-file-search/internal/domain"
)

// GithubRepository defines the paged GitHub API operations the search needs.
// Both enumerations are lazy: fn is called per item in API order, and a
// further page is requested only once the current page is consumed.

type GithubRepository interface {
	// ForEachPullRequest enumerates pull requests in the given state,
	// sorted by creation date descending.
	ForEachPullRequest(ctx context.Context, state domain.PullRequestState, fn func(domain.PullRequest) error) error

	// ForEachChangedFile enumerates the files changed by one pull request.
	ForEachChangedFile(ctx context.Context, pullNumber int, fn func(domain.ChangedFile) error) error
}
