// Package retry реализует повтор операции с ограниченным числом попыток
// и экспоненциальной задержкой с джиттером.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/jitter"
)

// Op — повторяемая операция.
type Op func(ctx context.Context) error

// Policy описывает параметры повтора.
type Policy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	// Retryable определяет, имеет ли смысл повторять после данной ошибки.
	// nil означает «повторять любую ошибку».
	Retryable func(err error) bool
}

// DefaultPolicy — 3 попытки с базовой задержкой в 1 секунду.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseBackoff: 1 * time.Second,
		MaxBackoff:  30 * time.Second,
	}
}

// Do выполняет op до первого успеха, исчерпания попыток или отмены контекста.
// Между попытками выдерживается экспоненциальная пауза с джиттером.
func Do(ctx context.Context, p Policy, op Op) error {
	const fn = "retry.Do"

	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if p.Retryable != nil && !p.Retryable(lastErr) {
			return e.Wrap(fn, lastErr)
		}

		if attempt == p.MaxAttempts-1 {
			break
		}

		sleep := jitter.ExponentialBackoff(p.BaseBackoff, p.MaxBackoff, attempt, jitter.DefaultJitter)
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return e.Wrap(fn, ctx.Err())
		}
	}

	return e.Wrap(fn, fmt.Errorf("all %d attempts failed: %w", p.MaxAttempts, lastErr))
}
