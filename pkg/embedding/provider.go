// Package embedding turns normalized documents into unit-length dense
// vectors. Providers share one interface so the backend is a config choice.
package embedding

import "context"

// Task types hint the backend at the retrieval role of the text. Backends
// that do not distinguish roles ignore the hint.
const (
	TaskDocument = "RETRIEVAL_DOCUMENT"
	TaskQuery    = "RETRIEVAL_QUERY"
)

// Provider generates a fixed-length embedding for a single text. The context
// carries the caller's timeout and cancellation. Implementations return
// vectors normalized to unit length, so cosine similarity reduces to a dot
// product downstream.
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
