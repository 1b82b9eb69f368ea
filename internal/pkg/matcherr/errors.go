// Package matcherr provides sentinel and custom error types for the matching pipeline.
package matcherr

// ErrNotFound represents a "not found" error.
// Use when the source entity for an embedding no longer exists.
var ErrNotFound = &NotFoundError{}

// NotFoundError is a sentinel error for entities that are not found.
// Non-retryable: the triggering event is already stale.
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new NotFoundError with a custom message.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Resource != "" {
		return e.Resource + " not found"
	}

	return "resource not found"
}

// Is implements the error interface for error comparison.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)

	return ok
}

// ErrModelLoad is the sentinel for embedding model initialization failures.
// Fatal for the process's embedding capability until restart; fail fast, do not retry.
var ErrModelLoad = &ModelLoadError{}

// ModelLoadError is a sentinel error for model initialization failures.
type ModelLoadError struct {
	Provider string
	Message  string
}

// NewModelLoadError creates a ModelLoadError with a custom message.
func NewModelLoadError(provider, message string) *ModelLoadError {
	return &ModelLoadError{Provider: provider, Message: message}
}

// Error implements the error interface.
func (e *ModelLoadError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Provider != "" {
		return "embedding model failed to load: " + e.Provider
	}

	return "embedding model failed to load"
}

// Is implements the error interface for error comparison.
func (e *ModelLoadError) Is(target error) bool {
	_, ok := target.(*ModelLoadError)

	return ok
}

// ErrEmbedding is the sentinel for transient inference failures. Retryable.
var ErrEmbedding = &EmbeddingError{}

// EmbeddingError is a sentinel error for runtime inference failures.
type EmbeddingError struct {
	Message string
}

// NewEmbeddingError creates an EmbeddingError with a custom message.
func NewEmbeddingError(message string) *EmbeddingError {
	return &EmbeddingError{Message: message}
}

// Error implements the error interface.
func (e *EmbeddingError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "embedding generation failed"
}

// Is implements the error interface for error comparison.
func (e *EmbeddingError) Is(target error) bool {
	_, ok := target.(*EmbeddingError)

	return ok
}

// ErrNoEmbedding is the sentinel for a read-path precondition failure: the
// entity was never embedded. Not a system fault; the UI should prompt the
// user to complete their profile rather than show a server error.
var ErrNoEmbedding = &NoEmbeddingError{}

// NoEmbeddingError signals that no embedding record exists for an entity.
type NoEmbeddingError struct {
	Kind    string
	Message string
}

// NewNoEmbeddingError creates a NoEmbeddingError with a custom message.
func NewNoEmbeddingError(kind, message string) *NoEmbeddingError {
	return &NoEmbeddingError{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *NoEmbeddingError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Kind != "" {
		return "no embedding stored for " + e.Kind
	}

	return "no embedding stored"
}

// Is implements the error interface for error comparison.
func (e *NoEmbeddingError) Is(target error) bool {
	_, ok := target.(*NoEmbeddingError)

	return ok
}

// ErrStore is the sentinel for vector store read/write failures. Retryable.
var ErrStore = &StoreError{}

// StoreError is a sentinel error for vector store failures.
type StoreError struct {
	Op      string
	Message string
}

// NewStoreError creates a StoreError with a custom message.
func NewStoreError(op, message string) *StoreError {
	return &StoreError{Op: op, Message: message}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Op != "" {
		return "vector store failure during " + e.Op
	}

	return "vector store failure"
}

// Is implements the error interface for error comparison.
func (e *StoreError) Is(target error) bool {
	_, ok := target.(*StoreError)

	return ok
}
