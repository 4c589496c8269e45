package retry

import "time"

// ErrorClassifier decides whether a failed operation may be attempted again.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy controls the delay between attempts.
type BackoffStrategy interface {
	// NextDelay returns the wait before retry number attempt (0 based).
	NextDelay(attempt int) time.Duration

	// MaxAttempts is the number of retries after the first try. Negative means unlimited.
	MaxAttempts() int
}
