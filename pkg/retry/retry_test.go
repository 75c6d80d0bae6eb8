package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastIntervals(t *testing.T) {
	t.Helper()
	old := Interval
	Interval = time.Millisecond
	t.Cleanup(func() { Interval = old })
}

func TestContextSucceedsFirstTry(t *testing.T) {
	fastIntervals(t)
	calls := 0
	err := Context(context.Background(), func(_ context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestContextRetriesUntilSuccess(t *testing.T) {
	fastIntervals(t)
	calls := 0
	err := Context(context.Background(), func(_ context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("nope")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestContextAbort(t *testing.T) {
	fastIntervals(t)
	calls := 0
	err := Context(context.Background(), func(_ context.Context) error {
		calls++
		return ErrAbort
	})
	require.ErrorIs(t, err, ErrAbort)
	require.Equal(t, 1, calls)
}

func TestTimeout(t *testing.T) {
	fastIntervals(t)
	err := Timeout(context.Background(), 10*time.Millisecond, func(_ context.Context) error {
		return errors.New("never succeeds")
	})
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTimes(t *testing.T) {
	fastIntervals(t)
	calls := 0
	err := Times(context.Background(), 3, func(_ context.Context) error {
		calls++
		return errors.New("nope")
	})
	require.Error(t, err)
	require.Equal(t, 3, calls)
}
