package jobcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastJob(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "test", time.Second)
	t.Cleanup(cancel)
	return SetRetryInterval(ctx, time.Millisecond)
}

func TestJobBegin_Metadata(t *testing.T) {
	id := uuid.New()
	ctx, cancel := JobBegin(context.Background(), id, "transcript.process", 0)
	defer cancel()

	meta := GetJobMetadata(ctx)
	assert.Equal(t, id, meta.JobID)
	assert.Equal(t, "transcript.process", meta.JobType)
	assert.Equal(t, 0, meta.RetryAttempt)
	assert.Equal(t, DefaultMaxRetries, meta.MaxRetries)
	assert.False(t, meta.StartTime.IsZero())

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)

	assert.Len(t, Fields(ctx), 3)
}

func TestJobEnd_Success(t *testing.T) {
	calls := 0
	err := JobEnd(fastJob(t), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestJobEnd_RetriesRetryableErrors(t *testing.T) {
	var attempts []int
	err := JobEnd(fastJob(t), func(ctx context.Context) error {
		attempts = append(attempts, GetRetryAttempt(ctx))
		if len(attempts) < 3 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, attempts)
}

func TestJobEnd_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := JobEnd(fastJob(t), func(context.Context) error {
		calls++
		return errors.New("503 service unavailable")
	})
	require.Error(t, err)
	assert.Equal(t, DefaultMaxRetries, calls)
	assert.Contains(t, err.Error(), "max retries (3) exceeded")
}

func TestJobEnd_NonRetryable(t *testing.T) {
	sentinel := errors.New("permission denied")
	calls := 0
	err := JobEnd(fastJob(t), func(context.Context) error {
		calls++
		return sentinel
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "non-retryable error")
}

func TestJobEnd_RecoversPanics(t *testing.T) {
	err := JobEnd(fastJob(t), func(context.Context) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: boom")
}

func TestJobEnd_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(fastJob(t))
	cancel()

	calls := 0
	err := JobEnd(ctx, func(context.Context) error {
		calls++
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: errors.New("read tcp: i/o timeout"), want: true},
		{err: errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), want: true},
		{err: errors.New("SlowDown: please reduce your request rate"), want: true},
		{err: errors.New("LOADING Redis is loading the dataset in memory"), want: true},
		{err: errors.New("record not found"), want: false},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err))
		})
	}
}
