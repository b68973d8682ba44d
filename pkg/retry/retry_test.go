package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  time.Millisecond,
	}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), testPolicy(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	sentinel := fmt.Errorf("still down")
	calls := 0
	err := Do(context.Background(), testPolicy(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	p := testPolicy()
	p.Retryable = func(err error) bool { return false }

	calls := 0
	err := Do(context.Background(), p, func(ctx context.Context) error {
		calls++
		return fmt.Errorf("permanent")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancellationBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := testPolicy()
	p.BaseBackoff = 50 * time.Millisecond
	p.MaxBackoff = 50 * time.Millisecond

	calls := 0
	err := Do(ctx, p, func(ctx context.Context) error {
		calls++
		cancel()
		return fmt.Errorf("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "отменённый контекст не получает вторую попытку")
}
