package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTransient = errors.New("busy")
	errFatal     = errors.New("syntax error")
)

type fakeClassifier struct{}

func (fakeClassifier) IsTransient(err error) bool { return errors.Is(err, errTransient) }

type fixedBackoff struct {
	delay       time.Duration
	maxAttempts int
}

func (b fixedBackoff) NextDelay(int) time.Duration { return b.delay }
func (b fixedBackoff) MaxAttempts() int            { return b.maxAttempts }

func newTestExecutor(maxAttempts int) *Executor {
	return NewExecutor(fakeClassifier{}, fixedBackoff{delay: time.Millisecond, maxAttempts: maxAttempts})
}

func TestExecutor_SuccessFirstTry(t *testing.T) {
	calls := 0
	err := newTestExecutor(3).Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecutor_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	var retried []int
	exec := newTestExecutor(3).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		retried = append(retried, attempt)
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, time.Millisecond, delay)
	})

	err := exec.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{0, 1}, retried)
}

func TestExecutor_FatalErrorStopsImmediately(t *testing.T) {
	calls := 0
	err := newTestExecutor(3).Execute(context.Background(), func(context.Context) error {
		calls++
		return errFatal
	})
	assert.ErrorIs(t, err, errFatal)
	assert.Equal(t, 1, calls)
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := newTestExecutor(2).Execute(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls, "first try plus two retries")
}

func TestExecutor_ZeroAttemptsMeansNoRetry(t *testing.T) {
	calls := 0
	err := newTestExecutor(0).Execute(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestExecutor_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	exec := NewExecutor(fakeClassifier{}, fixedBackoff{delay: time.Hour, maxAttempts: 5}).
		WithOnRetry(func(int, error, time.Duration) { cancel() })

	err := exec.Execute(ctx, func(context.Context) error { return errTransient })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_WithOnRetryDoesNotModifyReceiver(t *testing.T) {
	base := newTestExecutor(1)
	_ = base.WithOnRetry(func(int, error, time.Duration) { t.Fatal("callback leaked into base executor") })

	_ = base.Execute(context.Background(), func(context.Context) error { return errTransient })
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fixedBackoff{}) })
	assert.Panics(t, func() { NewExecutor(fakeClassifier{}, nil) })
}
