package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithContextReturnsOperationError(t *testing.T) {
	want := errors.New("boom")
	err := RunWithContext(context.Background(), func(context.Context) error { return want })
	assert.ErrorIs(t, err, want)

	assert.NoError(t, RunWithContext(context.Background(), func(context.Context) error { return nil }))
}

func TestRunWithContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := RunWithContext(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunWithContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := RunWithContext(ctx, func(opCtx context.Context) error {
		<-opCtx.Done()
		return opCtx.Err()
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled))
}

func TestRunWithContextDeadlineDoesNotWaitForOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	defer close(release)

	start := time.Now()
	err := RunWithContext(ctx, func(context.Context) error {
		<-release
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRunWithContextCompletedBeforeDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := RunWithContext(ctx, func(context.Context) error { return nil })
	assert.NoError(t, err)
}
