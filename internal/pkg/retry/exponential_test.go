package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func TestExecute_SucceedsFirstTry(t *testing.T) {
	r := New(fastConfig())
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesUntilSuccess(t *testing.T) {
	r := New(fastConfig())
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 2
	r := New(cfg)
	calls := 0
	boom := errors.New("boom")

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestExecute_StopsOnNonRetryableError(t *testing.T) {
	fatal := errors.New("fatal")
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, fatal) }
	r := New(cfg)
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestExecute_HonorsContextCancellation(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Second
	r := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(context.Context) error {
		return errors.New("keep retrying")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CappedAtMax(t *testing.T) {
	cfg := fastConfig()
	cfg.Jitter = false
	r := New(cfg)

	assert.LessOrEqual(t, r.calculateDelay(10), cfg.MaxDelay)
}
