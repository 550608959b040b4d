package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInput(t *testing.T) {
	t.Run("Should parse mm-dd-yy", func(t *testing.T) {
		parsed, err := parseDateInput("01-15-24")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), parsed)
	})
	t.Run("Should tolerate surrounding whitespace", func(t *testing.T) {
		parsed, err := parseDateInput("  12-31-23 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), parsed)
	})
	t.Run("Should reject other layouts", func(t *testing.T) {
		for _, input := range []string{"2024-01-15", "15-01-24x", "January 15", ""} {
			_, err := parseDateInput(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), endOfDay(d))
}

func TestPromptValidators(t *testing.T) {
	t.Run("Should reject a blank target file", func(t *testing.T) {
		assert.Error(t, validateTargetFile("   "))
		assert.NoError(t, validateTargetFile("src/app.py"))
	})
	t.Run("Should reject malformed dates", func(t *testing.T) {
		assert.Error(t, validateDateInput("31-31-24x"))
		assert.NoError(t, validateDateInput("01-31-24"))
	})
}

func TestResolveCriteria(t *testing.T) {
	t.Run("Should build criteria from flags", func(t *testing.T) {
		criteria, err := resolveCriteria("src/app.py", "all", "01-01-24", "01-31-24")
		require.NoError(t, err)
		assert.Equal(t, "src/app.py", criteria.TargetFile)
		assert.True(t, criteria.DateFiltering)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), criteria.StartDate)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), criteria.EndDate)
	})
	t.Run("Should reject an unknown state", func(t *testing.T) {
		_, err := resolveCriteria("src/app.py", "merged", "", "")
		require.Error(t, err)
	})
	t.Run("Should require both dates together", func(t *testing.T) {
		_, err := resolveCriteria("src/app.py", "all", "01-01-24", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "both --start-date and --end-date")
	})
	t.Run("Should reject a reversed range", func(t *testing.T) {
		_, err := resolveCriteria("src/app.py", "all", "02-01-24", "01-01-24")
		require.Error(t, err)
	})
	t.Run("Should reject dates with open state", func(t *testing.T) {
		_, err := resolveCriteria("src/app.py", "open", "01-01-24", "01-31-24")
		require.Error(t, err)
	})
}
