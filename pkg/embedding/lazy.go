package embedding

import (
	"context"
	"sync"

	"intern-matching-be/internal/pkg/matcherr"
)

// Lazy defers provider construction until the first Generate call. Concurrent
// cold calls share the single in-flight initialization, and an init failure is
// remembered: later calls fail fast with the same ModelLoadError instead of
// retrying a permanently broken model.
type Lazy struct {
	factory func() (Provider, error)

	once     sync.Once
	provider Provider
	initErr  error
}

// NewLazy wraps a provider factory. The factory runs at most once per process.
func NewLazy(factory func() (Provider, error)) *Lazy {
	return &Lazy{factory: factory}
}

func (l *Lazy) init() {
	provider, err := l.factory()
	if err != nil {
		l.initErr = matcherr.NewModelLoadError("", err.Error())
		return
	}
	l.provider = provider
}

func (l *Lazy) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	l.once.Do(l.init)
	if l.initErr != nil {
		return nil, l.initErr
	}
	return l.provider.Generate(ctx, text, taskType)
}
