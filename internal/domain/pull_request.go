package domain

import "time"

// PullRequest holds the metadata needed to search one pull request.

type PullRequest struct {
	Number    int
	HTMLURL   string
	CreatedAt time.Time
}

// ChangedFile is a single file path reported as modified by a pull request.
type ChangedFile struct {
	Filename string
}
