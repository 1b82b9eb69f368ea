package matcherr

import "errors"

// IsRetryable reports whether the caller may retry the failed operation.
// Transient inference and store failures are retryable; a missing source
// entity and a failed model load are not.
func IsRetryable(err error) bool {
	switch {
	case errors.Is(err, ErrEmbedding):
		return true
	case errors.Is(err, ErrStore):
		return true
	default:
		return false
	}
}
