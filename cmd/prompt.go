package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/pknoche/pr-file-search/internal/domain"
)

// dateInputLayout is the mm-dd-yy format accepted for date range input.
const dateInputLayout = "01-02-06"

func parseDateInput(s string) (time.Time, error) {
	parsed, err := time.Parse(dateInputLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected mm-dd-yy, got %q", strings.TrimSpace(s))
	}
	return parsed, nil
}

// endOfDay widens a date-granular end bound to cover its whole day, so a
// pull request created any time on the end date still falls in the window.
func endOfDay(d time.Time) time.Time {
	return d.Add(24*time.Hour - time.Second)
}

func validateTargetFile(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter the full path of a file")
	}
	return nil
}

func validateDateInput(s string) error {
	_, err := parseDateInput(s)
	return err
}

// promptCriteria collects SearchCriteria interactively. Each input re-prompts
// until its validator accepts; the start/end pair re-prompts as a whole when
// the range is reversed.
func promptCriteria() (*domain.SearchCriteria, error) {
	var (
		targetFile  string
		state       = string(domain.StateOpen)
		filterDates bool
	)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File to search for").
				Description("Full repository-relative path, e.g. src/app.py").
				Value(&targetFile).
				Validate(validateTargetFile),
			huh.NewSelect[string]().
				Title("Which pull requests?").
				Options(
					huh.NewOption("Open pull requests", string(domain.StateOpen)),
					huh.NewOption("All pull requests", string(domain.StateAll)),
				).
				Value(&state),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt aborted: %w", err)
	}
	criteria := &domain.SearchCriteria{
		TargetFile: strings.TrimSpace(targetFile),
		State:      domain.PullRequestState(state),
	}
	if criteria.State == domain.StateAll {
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Filter by date range?").
				Value(&filterDates),
		))
		if err := confirm.Run(); err != nil {
			return nil, fmt.Errorf("prompt aborted: %w", err)
		}
	}
	if filterDates {
		if err := promptDateRange(criteria); err != nil {
			return nil, err
		}
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return criteria, nil
}

func promptDateRange(criteria *domain.SearchCriteria) error {
	var startInput, endInput string
	for {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Start date (mm-dd-yy)").
				Value(&startInput).
				Validate(validateDateInput),
			huh.NewInput().
				Title("End date (mm-dd-yy)").
				Value(&endInput).
				Validate(validateDateInput),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("prompt aborted: %w", err)
		}
		startDate, err := parseDateInput(startInput)
		if err != nil {
			return err
		}
		endDate, err := parseDateInput(endInput)
		if err != nil {
			return err
		}
		if startDate.After(endDate) {
			fmt.Println("Start date cannot be after end date. Please enter the dates again.")
			continue
		}
		criteria.DateFiltering = true
		criteria.StartDate = startDate
		criteria.EndDate = endOfDay(endDate)
		return nil
	}
}
