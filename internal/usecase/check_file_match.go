package usecase

import (
	"context"

	"github.com/pknoche/pr-file-search/internal/domain"
	"github.com/pknoche/pr-file-search/internal/repository"
)

// CheckFileMatchUseCase determines whether one pull request modified the
// target file.
type CheckFileMatchUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute pages through the pull request's changed files, counting every
// file examined. Comparison is exact string equality on the full
// repository-relative path. On the first match it records the pull
// request's URL and stops fetching further pages; remaining files are
// irrelevant. Fetch errors are propagated untouched so the caller can
// decide whether they are fatal.
func (uc *CheckFileMatchUseCase) Execute(
	ctx context.Context,
	targetFile string,
	pr domain.PullRequest,
	result *domain.SearchResult,
) error {
	matched := false
	err := uc.GithubRepo.ForEachChangedFile(ctx, pr.Number, func(f domain.ChangedFile) error {
		result.AddFileSearched()
		if f.Filename == targetFile {
			matched = true
			return repository.ErrStopIteration
		}
		return nil
	})
	if err != nil {
		return err
	}
	if matched {
		result.RecordMatch(pr.HTMLURL)
	}
	return nil
}
