package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/pknoche/pr-file-search/internal/domain"
)

// ResultFilePermissions defines the permissions for exported result files.
const ResultFilePermissions = 0644

// ReportResultsUseCase renders a finished SearchResult. It only reads the
// result; coordination must have completed before Execute is called.
type ReportResultsUseCase struct {
	Fs afero.Fs
}

// Execute writes matched URLs (in recording order), any pull requests that
// could not be checked, and the summary counters. When outputPath is set,
// the matched URLs are also written there, one per line.
func (uc *ReportResultsUseCase) Execute(
	w io.Writer,
	criteria *domain.SearchCriteria,
	result *domain.SearchResult,
	outputPath string,
) error {
	urls := result.MatchedURLs()
	if len(urls) == 0 {
		fmt.Fprintf(w, "\nNo pull requests found that modified %s\n", criteria.TargetFile)
	} else {
		fmt.Fprintf(w, "\nPull requests that modified %s:\n", criteria.TargetFile)
		for _, url := range urls {
			fmt.Fprintln(w, url)
		}
	}
	if failures := result.Failures(); len(failures) > 0 {
		fmt.Fprintf(w, "\nCould not check %d pull request(s):\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(w, "  #%d: %v\n", f.PullNumber, f.Err)
		}
	}
	fmt.Fprintf(w, "\nSearched %d pull requests and %d files.\n",
		result.PullRequestsSearched(), result.FilesSearched())

	if outputPath != "" {
		var sb strings.Builder
		for _, url := range urls {
			sb.WriteString(url)
			sb.WriteByte('\n')
		}
		if err := afero.WriteFile(uc.Fs, outputPath, []byte(sb.String()), ResultFilePermissions); err != nil {
			return fmt.Errorf("failed to write results to %s: %w", outputPath, err)
		}
	}
	return nil
}
