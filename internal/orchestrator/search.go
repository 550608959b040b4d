package orchestrator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pknoche/pr-file-search/internal/domain"
	"github.com/pknoche/pr-file-search/internal/repository"
	"github.com/pknoche/pr-file-search/internal/usecase"
)

// SearchConfig contains per-run settings for the search workflow.
type SearchConfig struct {
	// Concurrency bounds how many file checks run in parallel. Zero or
	// negative selects the default bound.
	Concurrency int
}

// SearchOrchestrator coordinates one search run: it enumerates pull
// requests sequentially (page N+1 is only known after page N's response),
// applies the date filter, and fans the independent per-pull-request file
// checks out to a bounded worker group.
type SearchOrchestrator struct {
	githubRepo repository.GithubRepository
	logger     *zap.Logger
}

// NewSearchOrchestrator creates a new search orchestrator.
func NewSearchOrchestrator(githubRepo repository.GithubRepository, logger *zap.Logger) *SearchOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchOrchestrator{
		githubRepo: githubRepo,
		logger:     logger,
	}
}

// Execute runs the search. A fetch failure during pull-request enumeration
// is fatal: in-flight file checks are awaited, no new ones are dispatched,
// and the error is returned. A fetch failure inside a single file check is
// recorded against that pull request and the run continues; the returned
// SearchResult then carries best-effort coverage plus the failure list.
func (o *SearchOrchestrator) Execute(
	ctx context.Context,
	criteria *domain.SearchCriteria,
	cfg SearchConfig,
) (*domain.SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search criteria: %w", err)
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrencyMultiplier * runtime.GOMAXPROCS(0)
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultSearchTimeout)
	defer cancel()

	logger := o.logger.With(zap.String("run_id", uuid.New().String()))
	logger.Info("starting search",
		zap.String("target_file", criteria.TargetFile),
		zap.String("state", string(criteria.State)),
		zap.Bool("date_filtering", criteria.DateFiltering),
		zap.Int("concurrency", concurrency))

	result := domain.NewSearchResult()
	filter := &usecase.DateRangeFilterUseCase{Criteria: criteria}
	checker := &usecase.CheckFileMatchUseCase{GithubRepo: o.githubRepo}

	group := new(errgroup.Group)
	group.SetLimit(concurrency)

	enumErr := o.githubRepo.ForEachPullRequest(ctx, criteria.State, func(pr domain.PullRequest) error {
		decision, err := filter.Decide(pr)
		if err != nil {
			return err
		}
		switch decision {
		case usecase.DecisionSkip:
			return nil
		case usecase.DecisionStop:
			logger.Info("reached pull requests outside the date range, stopping enumeration")
			return repository.ErrStopIteration
		}
		result.AddPullRequestSearched()
		logger.Info("processing pull request", zap.Int("number", pr.Number))
		group.Go(func() error {
			if err := checker.Execute(ctx, criteria.TargetFile, pr, result); err != nil {
				result.RecordFailure(pr.Number, err)
				logger.Warn("could not check pull request",
					zap.Int("number", pr.Number), zap.Error(err))
			}
			// A failed check must not cancel its siblings, so the worker
			// never reports an error into the group.
			return nil
		})
		return nil
	})

	// Await in-flight checks even when enumeration failed, so the result
	// counters stay coherent with the work actually performed.
	_ = group.Wait()

	if enumErr != nil {
		return nil, fmt.Errorf("failed to enumerate pull requests: %w", enumErr)
	}
	logger.Info("search finished",
		zap.Int64("pull_requests_searched", result.PullRequestsSearched()),
		zap.Int64("files_searched", result.FilesSearched()),
		zap.Int("matches", len(result.MatchedURLs())),
		zap.Int("failed_checks", len(result.Failures())))
	return result, nil
}
