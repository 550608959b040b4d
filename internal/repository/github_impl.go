package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"

	"github.com/pknoche/pr-file-search/internal/config"
	"github.com/pknoche/pr-file-search/internal/domain"
)

// githubRepository is the go-github backed implementation of GithubRepository.
type githubRepository struct {
	client   *github.Client
	owner    string
	repo     string
	pageSize int
}

// NewGithubRepository creates a GithubRepository with validation. baseURL is
// optional and points at a GitHub Enterprise API root when set.
func NewGithubRepository(token, owner, repo, baseURL string, pageSize int) (GithubRepository, error) {
	if err := config.ValidateGitHubToken(token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	if err := config.ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	if pageSize <= 0 || pageSize > 100 {
		return nil, fmt.Errorf("invalid page size %d: must be between 1 and 100", pageSize)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
		}
	}

	return &githubRepository{
		client:   client,
		owner:    owner,
		repo:     repo,
		pageSize: pageSize,
	}, nil
}

// ForEachPullRequest pages through the pull-request list endpoint, sorted by
// creation date descending, and calls fn for every pull request.
func (r *githubRepository) ForEachPullRequest(
	ctx context.Context,
	state domain.PullRequestState,
	fn func(domain.PullRequest) error,
) error {
	fetch := func(ctx context.Context, page int) ([]*github.PullRequest, int, error) {
		opts := &github.PullRequestListOptions{
			State:     string(state),
			Sort:      "created",
			Direction: "desc",
			ListOptions: github.ListOptions{
				PerPage: r.pageSize,
				Page:    page,
			},
		}
		prs, resp, err := r.client.PullRequests.List(ctx, r.owner, r.repo, opts)
		if err != nil {
			return nil, 0, wrapFetchError(fmt.Sprintf("pull requests page %d", page), err)
		}
		return prs, resp.NextPage, nil
	}
	return forEachPage(ctx, fetch, func(pr *github.PullRequest) error {
		return fn(domain.PullRequest{
			Number:    pr.GetNumber(),
			HTMLURL:   pr.GetHTMLURL(),
			CreatedAt: pr.GetCreatedAt().Time,
		})
	})
}

// ForEachChangedFile pages through one pull request's changed-file list and
// calls fn for every file.
func (r *githubRepository) ForEachChangedFile(
	ctx context.Context,
	pullNumber int,
	fn func(domain.ChangedFile) error,
) error {
	fetch := func(ctx context.Context, page int) ([]*github.CommitFile, int, error) {
		opts := &github.ListOptions{
			PerPage: r.pageSize,
			Page:    page,
		}
		files, resp, err := r.client.PullRequests.ListFiles(ctx, r.owner, r.repo, pullNumber, opts)
		if err != nil {
			return nil, 0, wrapFetchError(
				fmt.Sprintf("files for pull request #%d, page %d", pullNumber, page), err)
		}
		return files, resp.NextPage, nil
	}
	return forEachPage(ctx, fetch, func(f *github.CommitFile) error {
		return fn(domain.ChangedFile{Filename: f.GetFilename()})
	})
}

// wrapFetchError converts a go-github error into a FetchError, preserving
// the status code and response body when the API answered with non-2xx.
func wrapFetchError(resource string, err error) error {
	fe := &FetchError{Resource: resource, Err: err}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		fe.StatusCode = ghErr.Response.StatusCode
		fe.Body = ghErr.Message
	}
	return fe
}
