package orchestrator

import "time"

const (
	// DefaultConcurrencyMultiplier scales available hardware concurrency
	// into the default file-check worker bound. Kept small so a run does
	// not hammer the rate-limited API.
	DefaultConcurrencyMultiplier = 4
	// DefaultSearchTimeout bounds one whole search run.
	DefaultSearchTimeout = 30 * time.Minute
)
