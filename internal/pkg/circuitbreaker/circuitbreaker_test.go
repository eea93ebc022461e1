package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failingCall() error { return errBoom }

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := New(Config{Name: "test", MaxFailures: 3, Timeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := cb.Execute(ctx, failingCall)
		assert.ErrorIs(t, err, errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(ctx, func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(Config{Name: "test", MaxFailures: 3, Timeout: time.Minute})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, failingCall))
	require.Error(t, cb.Execute(ctx, failingCall))
	require.NoError(t, cb.Execute(ctx, func() error { return nil }))

	assert.Equal(t, 0, cb.Failures())
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := New(Config{Name: "test", MaxFailures: 1, Timeout: time.Millisecond})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, failingCall))
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(5 * time.Millisecond)

	// First call after the timeout is the probe
	err := cb.Execute(ctx, func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	cb := New(Config{Name: "test", MaxFailures: 1, Timeout: time.Millisecond})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, failingCall))
	time.Sleep(5 * time.Millisecond)

	require.Error(t, cb.Execute(ctx, failingCall))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_ContextCancelled(t *testing.T) {
	cb := New(DefaultConfig("test"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cb.Execute(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteWithResult(t *testing.T) {
	cb := New(DefaultConfig("test"))
	ctx := context.Background()

	t.Run("returns the result", func(t *testing.T) {
		got, err := ExecuteWithResult(cb, ctx, func() (int, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("returns zero value on error", func(t *testing.T) {
		got, err := ExecuteWithResult(cb, ctx, func() (string, error) { return "", errBoom })
		assert.ErrorIs(t, err, errBoom)
		assert.Empty(t, got)
	})
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := New(Config{Name: "test", MaxFailures: 1, Timeout: time.Hour})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, failingCall))
	require.Equal(t, StateOpen, cb.State())

	cb.Reset()
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.Execute(ctx, func() error { return nil }))
}
