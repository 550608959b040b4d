package domain

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResult_ConcurrentMutation(t *testing.T) {
	t.Run("Should not lose updates under concurrent writers", func(t *testing.T) {
		result := NewSearchResult()
		const workers = 32
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				result.AddPullRequestSearched()
				result.AddFileSearched()
				result.AddFileSearched()
				result.RecordMatch(fmt.Sprintf("https://github.com/octo/widget/pull/%d", n))
			}(i)
		}
		wg.Wait()
		assert.Equal(t, int64(workers), result.PullRequestsSearched())
		assert.Equal(t, int64(2*workers), result.FilesSearched())
		assert.Len(t, result.MatchedURLs(), workers)
	})
}

func TestSearchResult_Accessors(t *testing.T) {
	t.Run("Should return copies of recorded matches", func(t *testing.T) {
		result := NewSearchResult()
		result.RecordMatch("https://github.com/octo/widget/pull/1")
		urls := result.MatchedURLs()
		urls[0] = "mutated"
		assert.Equal(t, []string{"https://github.com/octo/widget/pull/1"}, result.MatchedURLs())
	})
	t.Run("Should record failures with their pull number", func(t *testing.T) {
		result := NewSearchResult()
		result.RecordFailure(42, errors.New("boom"))
		failures := result.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, 42, failures[0].PullNumber)
		assert.EqualError(t, failures[0].Err, "boom")
	})
}
