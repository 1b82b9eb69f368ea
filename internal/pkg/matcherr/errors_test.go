package matcherr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatchingSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("embed job 42: %w", NewEmbeddingError("upstream 500"))

	assert.ErrorIs(t, err, ErrEmbedding)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStore)
}

func TestErrorMessagesFallBackSensibly(t *testing.T) {
	assert.Equal(t, "resource not found", (&NotFoundError{}).Error())
	assert.Equal(t, "intern profile not found", (&NotFoundError{Resource: "intern profile"}).Error())
	assert.Equal(t, "custom", (&NotFoundError{Message: "custom"}).Error())

	assert.Equal(t, "embedding model failed to load: ollama", (&ModelLoadError{Provider: "ollama"}).Error())
	assert.Equal(t, "no embedding stored for intern", (&NoEmbeddingError{Kind: "intern"}).Error())
	assert.Equal(t, "vector store failure during upsert", (&StoreError{Op: "upsert"}).Error())
}

func TestIsRetryableClassification(t *testing.T) {
	// transient faults retry
	assert.True(t, IsRetryable(NewEmbeddingError("timeout")))
	assert.True(t, IsRetryable(NewStoreError("upsert", "connection reset")))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", NewStoreError("search", "down"))))

	// stale triggers and dead models do not
	assert.False(t, IsRetryable(NewNotFoundError("job post", "gone")))
	assert.False(t, IsRetryable(NewModelLoadError("gemini", "bad api key")))
	assert.False(t, IsRetryable(NewNoEmbeddingError("intern", "not embedded")))
	assert.False(t, IsRetryable(errors.New("unclassified")))
	assert.False(t, IsRetryable(nil))
}
