package jobcontext

import (
	"context"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID         KeyContext = "job_id"
	keyJobType       KeyContext = "job_type"
	keyRetryAttempt  KeyContext = "retry_attempt"
	keyJobStartTime  KeyContext = "job_start_time"
	keyMaxRetries    KeyContext = "max_retries"
	keyRetryInterval KeyContext = "retry_interval"
)

const (
	// DefaultTimeout bounds a whole job, retries included
	DefaultTimeout       = 2 * time.Minute
	DefaultMaxRetries    = 3
	DefaultRetryInterval = 500 * time.Millisecond
)

// JobMetadata holds metadata for a job execution
type JobMetadata struct {
	JobID        uuid.UUID
	JobType      string
	RetryAttempt int
	MaxRetries   int
	StartTime    time.Time
}

// JobBegin derives a job context carrying metadata and a timeout
func JobBegin(parentCtx context.Context, jobID uuid.UUID, jobType string, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(parentCtx, timeout)

	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyRetryAttempt, 0)
	ctx = context.WithValue(ctx, keyMaxRetries, DefaultMaxRetries)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// JobEnd runs step with panic recovery, retrying retryable errors with
// exponential backoff until the retry budget or the context runs out.
func JobEnd(ctx context.Context, step func(context.Context) error) error {
	maxRetries := GetMaxRetries(ctx)
	attempt := GetRetryAttempt(ctx)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = GetRetryInterval(ctx)
	bo.MaxInterval = 10 * bo.InitialInterval
	bo.MaxElapsedTime = 0

	var lastErr error
	op := func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(fmt.Errorf("context cancelled before job execution: %w", ctx.Err()))
		}

		err := runSafely(SetRetryAttempt(ctx, attempt), step)
		attempt++
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryableError(err) {
			return backoff.Permanent(fmt.Errorf("non-retryable error: %w", err))
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(max(maxRetries-1, 0))), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		if IsRetryableError(err) && lastErr != nil {
			return fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, lastErr)
		}
		return err
	}
	return nil
}

func runSafely(ctx context.Context, step func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()
	return step(ctx)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetRetryAttempt extracts current retry attempt from context
func GetRetryAttempt(ctx context.Context) int {
	attempt, ok := ctx.Value(keyRetryAttempt).(int)
	if !ok {
		return 0
	}
	return attempt
}

// SetRetryAttempt updates retry attempt in context
func SetRetryAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, keyRetryAttempt, attempt)
}

// GetMaxRetries extracts max retries from context
func GetMaxRetries(ctx context.Context) int {
	maxRetries, ok := ctx.Value(keyMaxRetries).(int)
	if !ok {
		return DefaultMaxRetries
	}
	return maxRetries
}

// SetMaxRetries updates max retries in context
func SetMaxRetries(ctx context.Context, maxRetries int) context.Context {
	return context.WithValue(ctx, keyMaxRetries, maxRetries)
}

// GetRetryInterval returns the initial backoff interval
func GetRetryInterval(ctx context.Context) time.Duration {
	d, ok := ctx.Value(keyRetryInterval).(time.Duration)
	if !ok || d <= 0 {
		return DefaultRetryInterval
	}
	return d
}

// SetRetryInterval overrides the initial backoff interval
func SetRetryInterval(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, keyRetryInterval, d)
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	jobType, _ := GetJobType(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:        jobID,
		JobType:      jobType,
		RetryAttempt: GetRetryAttempt(ctx),
		MaxRetries:   GetMaxRetries(ctx),
		StartTime:    startTime,
	}
}

// Fields returns the job metadata as zap fields for log correlation
func Fields(ctx context.Context) []zap.Field {
	meta := GetJobMetadata(ctx)
	fields := []zap.Field{
		zap.String("job_id", meta.JobID.String()),
		zap.String("job_type", meta.JobType),
	}
	if !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(meta.StartTime)))
	}
	return fields
}

// IsRetryableError checks if an error should trigger a retry
// Retryable errors include: network errors, timeouts, deadlocks, rate limits
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "broken pipe") {
		return true
	}

	// Database deadlock/lock errors (Postgres)
	if strings.Contains(errStr, "deadlock") ||
		strings.Contains(errStr, "40001") || // serialization_failure
		strings.Contains(errStr, "40p01") { // deadlock_detected
		return true
	}

	// Object storage / redis throttling
	if strings.Contains(errStr, "slowdown") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "loading the dataset in memory") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	// Temporary failures
	if strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "try again") {
		return true
	}

	return false
}
