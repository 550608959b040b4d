package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pknoche/pr-file-search/internal/domain"
	"github.com/pknoche/pr-file-search/internal/orchestrator"
	"github.com/pknoche/pr-file-search/internal/usecase"
)

// NewSearchCmd creates the search command
func NewSearchCmd(c *container) *cobra.Command {
	var (
		searchFile        string
		searchState       string
		searchStart       string
		searchEnd         string
		searchOutput      string
		searchConcurrency int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search pull requests for ones that modified a file",
		Long: `Search the configured repository's pull requests for ones that
modified a specific file path.

Pull requests are enumerated newest first. Each retained pull request's
changed-file list is checked concurrently, bounded so the GitHub API is
not hammered. A failed check for one pull request is reported and does
not abort the run; a failure while listing pull requests does.

Without --file the command prompts interactively for the search criteria.
Dates use mm-dd-yy and are only honored together with --state all.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria, err := resolveCriteria(searchFile, searchState, searchStart, searchEnd)
			if err != nil {
				return err
			}
			ghRepo, err := c.newGithubRepository()
			if err != nil {
				return err
			}
			concurrency := searchConcurrency
			if concurrency <= 0 {
				concurrency = c.cfg.Concurrency
			}
			orch := orchestrator.NewSearchOrchestrator(ghRepo, c.logger)
			start := time.Now()
			result, err := orch.Execute(cmd.Context(), criteria, orchestrator.SearchConfig{
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}
			reporter := &usecase.ReportResultsUseCase{Fs: c.fs}
			if err := reporter.Execute(cmd.OutOrStdout(), criteria, result, searchOutput); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSearch finished in %.2f seconds.\n", time.Since(start).Seconds())
			return nil
		},
	}

	cmd.Flags().StringVar(&searchFile, "file", "", "Full path of the file to search for (prompts when omitted)")
	cmd.Flags().StringVar(&searchState, "state", "open", "Pull request state to search: open or all")
	cmd.Flags().StringVar(&searchStart, "start-date", "", "Only consider pull requests created on or after this date (mm-dd-yy)")
	cmd.Flags().StringVar(&searchEnd, "end-date", "", "Only consider pull requests created on or before this date (mm-dd-yy)")
	cmd.Flags().StringVar(&searchOutput, "output", "", "Write matched pull request URLs to this file")
	cmd.Flags().IntVar(&searchConcurrency, "concurrency", 0, "Concurrent file checks (default: 4x available CPUs)")
	return cmd
}

// resolveCriteria builds SearchCriteria from flags, falling back to the
// interactive prompt when no target file was given.
func resolveCriteria(file, state, startInput, endInput string) (*domain.SearchCriteria, error) {
	if file == "" {
		return promptCriteria()
	}
	prState, err := domain.ParseState(state)
	if err != nil {
		return nil, err
	}
	criteria := &domain.SearchCriteria{
		TargetFile: file,
		State:      prState,
	}
	if startInput != "" || endInput != "" {
		if startInput == "" || endInput == "" {
			return nil, fmt.Errorf("date filtering requires both --start-date and --end-date")
		}
		startDate, err := parseDateInput(startInput)
		if err != nil {
			return nil, fmt.Errorf("invalid --start-date: %w", err)
		}
		endDate, err := parseDateInput(endInput)
		if err != nil {
			return nil, fmt.Errorf("invalid --end-date: %w", err)
		}
		criteria.DateFiltering = true
		criteria.StartDate = startDate
		criteria.EndDate = endOfDay(endDate)
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return criteria, nil
}
