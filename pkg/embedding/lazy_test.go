package embedding

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"intern-matching-be/internal/pkg/matcherr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	vec []float32
}

func (s *stubProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	return s.vec, nil
}

func TestLazySharesSingleLoad(t *testing.T) {
	var loads int32
	lazy := NewLazy(func() (Provider, error) {
		atomic.AddInt32(&loads, 1)
		return &stubProvider{vec: []float32{1, 0}}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vec, err := lazy.Generate(context.Background(), "hello", TaskDocument)
			assert.NoError(t, err)
			assert.Equal(t, []float32{1, 0}, vec)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestLazyFailFastOnLoadError(t *testing.T) {
	var loads int32
	lazy := NewLazy(func() (Provider, error) {
		atomic.AddInt32(&loads, 1)
		return nil, errors.New("model weights missing")
	})

	for i := 0; i < 3; i++ {
		_, err := lazy.Generate(context.Background(), "x", TaskQuery)
		require.Error(t, err)
		assert.ErrorIs(t, err, matcherr.ErrModelLoad)
		assert.False(t, matcherr.IsRetryable(err))
	}

	// Factory must not be re-run after a permanent failure.
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}
